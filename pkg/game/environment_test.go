package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/actor"
	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

func testEnv(t *testing.T) *Environment {
	t.Helper()

	pistol := &item.Ranged{
		Meta:       item.Meta{Name: "Pistol", Description: "a good pistol"},
		Damage:     50,
		Visibility: item.VisibilityLow,
		Ammo:       15,
	}
	player := actor.NewPlayer("Ryan", "An awesome programmer", personality.Male, item.List{pistol})
	player.Equip(pistol)

	maid := actor.New("Alyss", "A girl", actor.TypeMaid, personality.Female,
		personality.Straight, personality.NeutralBravery, personality.Chaotic, personality.Red, 1.0)

	spawn := room.New("Spawn", "The Spawn Room", room.TypeSpawn,
		[]*actor.Person{maid},
		item.List{&item.Intel{Meta: item.Meta{Name: "DrugManifest", Description: "A listing"}}})
	spawnMap := &room.Map{
		CurrentRoom: "Spawn",
		AdjacentRooms: []room.AdjacentRoom{
			{Name: "MainStairs", Lock: room.LockState{Kind: room.Unlocked}},
			{Name: "TechLab", Lock: room.LockState{Kind: room.Secret}},
		},
	}

	rooms := world.NewRooms()
	rooms.Put(spawn, spawnMap)

	return &Environment{
		Player: player,
		Room:   spawn,
		Map:    spawnMap,
		Status: StatusContinue,
		Objectives: []Objective{
			{Kind: ObjectiveKill, Name: "Viktor", TargetState: TargetAlive},
			{Kind: ObjectiveCollectIntel, Name: "DrugManifest"},
		},
		VisitedRooms: []string{"spawn"},
		Rooms:        rooms,
		Out:          output.New(),
		Rng:          rand.New(rand.NewSource(1)),
	}
}

func TestCheckPlayer(t *testing.T) {
	t.Run("healthy player is untouched", func(t *testing.T) {
		env := testEnv(t)
		env.CheckPlayer()
		assert.Equal(t, StatusContinue, env.Status)
		assert.Equal(t, 100, env.Player.Health)
	})

	t.Run("death without extra lives ends the game", func(t *testing.T) {
		env := testEnv(t)
		env.Player.Health = -20
		env.CheckPlayer()
		assert.Equal(t, StatusPlayerDead, env.Status)
		assert.Equal(t, 0, env.Player.Health)
	})

	t.Run("extra life reincarnates", func(t *testing.T) {
		env := testEnv(t)
		env.AddLife(RespawnData{Name: "Alyss", Gender: personality.Female})
		env.Player.Health = 0

		env.CheckPlayer()
		assert.Equal(t, StatusContinue, env.Status)
		assert.Equal(t, 100, env.Player.Health)
		assert.Equal(t, "Alyss", env.Player.Name)
		assert.Equal(t, personality.Female, env.Player.Gender)
		assert.Empty(t, env.ExtraLives)
		assert.Contains(t, env.Out.Drain(), "You have been reincarnated as Alyss, female")
	})
}

func TestObjectiveChecks(t *testing.T) {
	env := testEnv(t)

	intel, _ := env.FindItem("drugmanifest")
	env.CheckItemObjectives(intel)
	assert.True(t, env.Objectives[1].Completed)
	assert.Contains(t, env.Out.Drain(), "You completed an Objective: CollectIntel-DrugManifest")

	target := actor.New("Viktor", "The target", actor.TypeTarget, personality.Male,
		personality.Straight, personality.Brave, personality.Lawful, personality.Blue, 0.5)
	env.CheckPersonObjectives(target)
	assert.True(t, env.Objectives[0].Completed)
	assert.Equal(t, TargetEliminated, env.Objectives[0].TargetState)

	assert.True(t, env.AllObjectivesComplete())
	assert.Equal(t, 2, env.CompletedObjectives())
}

func TestRevealPassageways(t *testing.T) {
	env := testEnv(t)
	env.RevealPassageways()

	adj, ok := env.Map.Find("TechLab")
	require.True(t, ok)
	assert.Equal(t, room.Unlocked, adj.Lock.Kind)
}

func TestAddVisitedDeduplicates(t *testing.T) {
	env := testEnv(t)
	env.AddVisited("MainStairs")
	env.AddVisited("mainstairs")
	env.AddVisited("Spawn")
	assert.Equal(t, []string{"spawn", "MainStairs"}, env.VisitedRooms)
}

func TestUpdatePeopleStatus(t *testing.T) {
	env := testEnv(t)
	poisoned, _ := env.FindPerson("Alyss")
	poisoned.Poisoned = true

	env.TrackPerson(poisoned)
	env.TrackPerson(poisoned) // no duplicate entry
	require.Len(t, env.UpdatePeople, 1)

	env.UpdatePeopleStatus()
	assert.Equal(t, 90, poisoned.Health)
}

func TestTimeAdd(t *testing.T) {
	tm := Time{}
	tm.Add(59)
	assert.Equal(t, Time{Hour: 0, Minute: 59}, tm)
	tm.Add(61)
	assert.Equal(t, Time{Hour: 2, Minute: 0}, tm)
	assert.Equal(t, "02:00", tm.String())
}

func TestSaveDocRoundTrip(t *testing.T) {
	env := testEnv(t)
	doc := NewSaveDoc(env)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got SaveDoc
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, doc.ID, got.ID)
	require.NotNil(t, got.Environment)
	assert.Equal(t, env.Player.Name, got.Environment.Player.Name)
	assert.Equal(t, env.Objectives, got.Environment.Objectives)
	assert.Equal(t, env.VisitedRooms, got.Environment.VisitedRooms)

	// Room snapshots restore with identical contents.
	rm, m, err := got.RoomData.Get("spawn")
	require.NoError(t, err)
	assert.Equal(t, env.Room, rm)
	assert.Equal(t, env.Map, m)

	// The equipped weapon survives as a live inventory reference.
	eq, ok := got.Environment.Player.Equipped()
	require.True(t, ok)
	assert.Equal(t, "Pistol", eq.ItemName())
}
