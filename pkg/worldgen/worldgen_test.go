package worldgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

func generate(t *testing.T, seed int64, count int) (*world.Rooms, []game.Objective) {
	t.Helper()
	g := New(rand.New(rand.NewSource(seed)))
	rooms, objectives, err := g.Generate(count)
	require.NoError(t, err)
	return rooms, objectives
}

func TestGenerateBaseSet(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w, _ := generate(t, seed, 20)
		// Name de-duplication can shave a few rooms off the request; the
		// base set is always present.
		assert.GreaterOrEqual(t, w.Len(), MinRoomCount)
		assert.LessOrEqual(t, w.Len(), 20)

		types := make(map[room.Type]int)
		for _, name := range w.Names() {
			rm, _, err := w.Get(name)
			require.NoError(t, err)
			types[rm.Type]++
		}
		for _, base := range baseTypes {
			assert.GreaterOrEqual(t, types[base.typ], 1, "seed %d missing %s", seed, base.typ)
		}

		spawn, _, err := w.Get("Spawn")
		require.NoError(t, err)
		maid, ok := spawn.FindPerson("Alyss")
		require.True(t, ok, "seed %d spawn has no maid", seed)
		assert.Equal(t, actor.TypeMaid, maid.Type)
	}
}

func TestGenerateFullyConnected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w, _ := generate(t, seed, 25)

		visited := map[string]bool{"spawn": true}
		queue := []string{"Spawn"}
		for len(queue) > 0 {
			name := queue[0]
			queue = queue[1:]
			_, m, err := w.Get(name)
			require.NoError(t, err)
			for _, adj := range m.AdjacentRooms {
				key := strings.ToLower(adj.Name)
				if !visited[key] {
					visited[key] = true
					queue = append(queue, adj.Name)
				}
			}
		}
		assert.Equal(t, w.Len(), len(visited), "seed %d world not connected", seed)
	}
}

func TestGenerateEdgesAreSymmetric(t *testing.T) {
	w, _ := generate(t, 7, 20)
	for _, name := range w.Names() {
		_, m, err := w.Get(name)
		require.NoError(t, err)
		for _, adj := range m.AdjacentRooms {
			_, back, err := w.Get(adj.Name)
			require.NoError(t, err)
			_, ok := back.Find(name)
			assert.True(t, ok, "%s -> %s has no back edge", name, adj.Name)
		}
	}
}

func TestSecretClosetsLinkMissionRooms(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		w, _ := generate(t, seed, 20)

		var missionNames []string
		for _, name := range w.Names() {
			rm, _, _ := w.Get(name)
			if rm.Type == room.TypeMissionRoom {
				missionNames = append(missionNames, rm.Name)
			}
		}
		require.NotEmpty(t, missionNames)

		secretClosets := 0
		for _, name := range w.Names() {
			rm, m, _ := w.Get(name)
			if rm.Type != room.TypeCloset || !rm.HasSecret {
				continue
			}
			secretClosets++

			// Every mission room reachable behind a secret door.
			for _, mission := range missionNames {
				adj, ok := m.Find(mission)
				require.True(t, ok, "closet %s not linked to %s", name, mission)
				assert.Equal(t, room.Secret, adj.Lock.Kind)
			}

			// And a passageway item that names them all.
			var passage *item.HiddenPassageway
			for _, it := range rm.Items {
				if hp, ok := it.(*item.HiddenPassageway); ok {
					passage = hp
				}
			}
			require.NotNil(t, passage, "closet %s has no passageway", name)
			for _, mission := range missionNames {
				assert.Contains(t, passage.Rooms, mission)
			}

			// No doubled edges.
			seen := make(map[string]bool)
			for _, adj := range m.AdjacentRooms {
				key := strings.ToLower(adj.Name)
				assert.False(t, seen[key], "closet %s lists %s twice", name, adj.Name)
				seen[key] = true
			}
		}
		require.GreaterOrEqual(t, secretClosets, 1, "seed %d has no secret closet", seed)
	}
}

func TestEveryObjectiveHasAClue(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		w, objectives := generate(t, seed, 20)
		require.NotEmpty(t, objectives)

		clues := make(map[string]bool)
		for _, name := range w.Names() {
			rm, _, _ := w.Get(name)
			for _, it := range rm.Items {
				if c, ok := it.(*item.Clue); ok {
					clues[c.Text] = true
				}
			}
		}
		for _, o := range objectives {
			assert.True(t, clues[o.Name+": "+o.InfoString()], "seed %d objective %s has no clue", seed, o.Name)
		}
	}
}

func TestObjectivesMatchWorldContents(t *testing.T) {
	w, objectives := generate(t, 3, 20)

	targets := make(map[string]bool)
	intel := make(map[string]bool)
	for _, name := range w.Names() {
		rm, _, _ := w.Get(name)
		for _, p := range rm.People {
			if p.Type == actor.TypeTarget {
				targets[p.Name] = true
			}
		}
		for _, it := range rm.Items {
			if it.Kind() == item.KindIntel {
				intel[it.ItemName()] = true
			}
		}
	}

	for _, o := range objectives {
		switch o.Kind {
		case game.ObjectiveKill:
			assert.True(t, targets[o.Name], "kill objective %s has no target", o.Name)
			assert.Equal(t, game.TargetAlive, o.TargetState)
		case game.ObjectiveCollectIntel:
			assert.True(t, intel[o.Name], "intel objective %s has no item", o.Name)
		}
	}
}

func TestGenerateEnforcesMinimum(t *testing.T) {
	w, _ := generate(t, 1, 3)
	assert.Equal(t, MinRoomCount, w.Len())
}

func TestPersonNamesUnique(t *testing.T) {
	w, _ := generate(t, 11, 25)
	seen := make(map[string]bool)
	for _, name := range w.Names() {
		rm, _, _ := w.Get(name)
		for _, p := range rm.People {
			assert.False(t, seen[p.Name], "duplicate person name %s", p.Name)
			seen[p.Name] = true
		}
	}
}
