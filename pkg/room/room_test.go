package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/actor"
	"hitman/pkg/item"
	"hitman/pkg/personality"
)

func testRoom() *Room {
	maid := actor.New("Alyss", "A girl", actor.TypeMaid, personality.Female,
		personality.Straight, personality.NeutralBravery, personality.Chaotic, personality.Red, 1.0)
	return New("Spawn", "The Spawn Room", TypeSpawn,
		[]*actor.Person{maid},
		item.List{
			&item.Key{Meta: item.Meta{Name: "BlueKey", Description: "A BlueKey"}, Color: item.Blue},
			&item.Escape{Meta: item.Meta{Name: "Tesla", Description: "A sleek electric car"}},
		})
}

func TestFindPersonCaseInsensitive(t *testing.T) {
	r := testRoom()

	p, ok := r.FindPerson("ALYSS")
	require.True(t, ok)
	assert.Equal(t, "Alyss", p.Name)

	_, ok = r.FindPerson("viktor")
	assert.False(t, ok)
}

func TestRemovePerson(t *testing.T) {
	r := testRoom()

	assert.True(t, r.RemovePerson("alyss"))
	assert.Empty(t, r.People)
	assert.False(t, r.RemovePerson("alyss"))
}

func TestFindAndRemoveItem(t *testing.T) {
	r := testRoom()

	it, ok := r.FindItem("bluekey")
	require.True(t, ok)
	assert.Equal(t, item.KindKey, it.Kind())

	assert.True(t, r.RemoveItem("BlueKey"))
	_, ok = r.FindItem("bluekey")
	assert.False(t, ok)
}

func TestAdjacentRoomDisplay(t *testing.T) {
	tests := []struct {
		name string
		adj  AdjacentRoom
		want string
	}{
		{"unlocked", AdjacentRoom{Name: "NorthPatio", Lock: LockState{Kind: Unlocked}}, "NorthPatio"},
		{"secret hidden name only", AdjacentRoom{Name: "TechLab", Lock: LockState{Kind: Secret}}, "TechLab"},
		{"locked names key color", AdjacentRoom{Name: "Workshop", Lock: LockedWith(item.Blue)}, "Workshop Locked: blue key required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.adj.Display())
		})
	}
}

func TestMapFindAndReveal(t *testing.T) {
	m := &Map{
		CurrentRoom: "ParentsCloset",
		AdjacentRooms: []AdjacentRoom{
			{Name: "ParentsRoom", Lock: LockState{Kind: Unlocked}},
			{Name: "TechLab", Lock: LockState{Kind: Secret}},
			{Name: "Cellar", Lock: LockState{Kind: Secret}},
		},
	}

	adj, ok := m.Find("techlab")
	require.True(t, ok)
	assert.Equal(t, Secret, adj.Lock.Kind)

	assert.Equal(t, 2, m.RevealSecrets())
	for _, a := range m.AdjacentRooms {
		assert.Equal(t, Unlocked, a.Lock.Kind)
	}
	assert.Zero(t, m.RevealSecrets())
}

func TestRoomJSONRoundTrip(t *testing.T) {
	r := testRoom()
	r.People[0].Poisoned = true
	r.People[0].Awareness = actor.Awareness{Kind: actor.Hostile, Target: actor.Target{Kind: actor.TargetPlayer}}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got Room
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r, &got)
}

func TestTypeOutdoor(t *testing.T) {
	assert.True(t, TypeGarden.Outdoor())
	assert.True(t, TypeSpawn.Outdoor())
	assert.False(t, TypeHallway.Outdoor())
	assert.False(t, TypeMissionRoom.Outdoor())
}
