package storage

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testDoc(t *testing.T) *game.SaveDoc {
	t.Helper()

	maid := actor.New("Mary", "A maid", actor.TypeMaid, personality.Female, personality.Straight,
		personality.NeutralBravery, personality.NeutralEthics, personality.Grey, 0.5)
	maid.Poisoned = true

	knife := &item.Melee{Meta: item.Meta{Name: "Knife", Description: "A kitchen knife"}, Damage: 20}
	current := room.New("Kitchen", "The kitchen", room.TypeCommonRoom, []*actor.Person{maid}, item.List{knife})
	m := &room.Map{
		CurrentRoom:   "Kitchen",
		AdjacentRooms: []room.AdjacentRoom{{Name: "Pantry", Lock: room.LockState{Kind: room.Locked, Code: "blue"}}},
	}
	pantry := room.New("Pantry", "The pantry", room.TypeCommonRoom, nil, item.List{})
	pantryMap := &room.Map{
		CurrentRoom:   "Pantry",
		AdjacentRooms: []room.AdjacentRoom{{Name: "Kitchen", Lock: room.LockState{Kind: room.Locked, Code: "blue"}}},
	}

	rooms := world.NewRooms()
	rooms.Put(current, m)
	rooms.Put(pantry, pantryMap)

	player := actor.NewPlayer("Ryan", "An assassin", personality.Male, item.List{
		&item.Ranged{Meta: item.Meta{Name: "Pistol", Description: "A silenced pistol"}, Damage: 50, Ammo: 12},
	})
	pistol, _ := player.FindItem("Pistol")
	player.Equip(pistol)

	env := &game.Environment{
		Player:       player,
		Room:         current,
		Map:          m,
		Time:         game.Time{Hour: 1, Minute: 30},
		Status:       game.StatusContinue,
		UpdatePeople: []*actor.Person{maid},
		Objectives:   []game.Objective{{Kind: game.ObjectiveKill, Name: "Sergei", TargetState: game.TargetAlive}},
		MoveCount:    12,
		VisitedRooms: []string{"Kitchen"},
		Rooms:        rooms,
		Out:          output.New(),
		Rng:          rand.New(rand.NewSource(1)),
	}
	return game.NewSaveDoc(env)
}

// exerciseStore runs the save/load/list/delete cycle common to both backends.
func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()
	doc := testDoc(t)

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.SaveGame(ctx, doc))

	loaded, err := store.LoadGame(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, doc.ID, loaded.ID)

	env, err := loaded.Runtime(output.New(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "Ryan", env.Player.Name)
	assert.Equal(t, 12, env.MoveCount)
	assert.Equal(t, "Kitchen", env.Room.Name)
	assert.Equal(t, game.Time{Hour: 1, Minute: 30}, env.Time)

	// The equipped weapon survives as a name reference.
	equipped, ok := env.Player.Equipped()
	require.True(t, ok)
	assert.Equal(t, "Pistol", equipped.ItemName())

	// The live room must alias its store entry, and tracked people must
	// alias room occupants.
	stored, _, err := env.Rooms.Get("Kitchen")
	require.NoError(t, err)
	assert.Same(t, env.Room, stored)
	occupant, ok := env.Room.FindPerson("Mary")
	require.True(t, ok)
	require.Len(t, env.UpdatePeople, 1)
	assert.Same(t, occupant, env.UpdatePeople[0])
	assert.True(t, occupant.Poisoned)

	infos, err := store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, doc.ID, infos[0].ID)
	assert.Equal(t, "Ryan", infos[0].PlayerName)
	assert.Equal(t, 12, infos[0].MoveCount)

	require.NoError(t, store.DeleteGame(ctx, doc.ID))
	gone, err := store.LoadGame(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := NewRedisStore("redis://"+mr.Addr(), testLogger())
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestListGamesSortsNewestFirst(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	older := testDoc(t)
	older.SavedAt = time.Now().Add(-time.Hour)
	newer := testDoc(t)
	require.NoError(t, store.SaveGame(ctx, older))
	require.NoError(t, store.SaveGame(ctx, newer))

	infos, err := store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, newer.ID, infos[0].ID)
	assert.Equal(t, older.ID, infos[1].ID)
}

func TestLoadMissingSaveReturnsNil(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	doc, err := store.LoadGame(context.Background(), testDoc(t).ID)
	require.NoError(t, err)
	assert.Nil(t, doc)
}
