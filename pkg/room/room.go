// Package room models rooms and the adjacency records that connect them.
package room

import (
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/item"
)

// Type classifies a room for generation and gameplay rules.
type Type string

const (
	TypeSpawn       Type = "spawn"
	TypePatio       Type = "patio"
	TypeGarden      Type = "garden"
	TypeGarage      Type = "garage"
	TypeStorage     Type = "storage"
	TypeBathroom    Type = "bathroom"
	TypeStairs      Type = "stairs"
	TypeHallway     Type = "hallway"
	TypeCommonRoom  Type = "common_room"
	TypeEntranceWay Type = "entrance_way"
	TypePrivateRoom Type = "private_room"
	TypeCloset      Type = "closet"
	TypeMissionRoom Type = "mission_room"
)

// Outdoor reports whether the type sits outside the house.
func (t Type) Outdoor() bool {
	switch t {
	case TypeSpawn, TypePatio, TypeGarden, TypeGarage, TypeStorage:
		return true
	default:
		return false
	}
}

type LockKind string

const (
	Unlocked LockKind = "unlocked"
	Secret   LockKind = "secret"
	Locked   LockKind = "locked"
)

// LockState is a per-directed-edge lock. Code is meaningful only when Kind
// is Locked.
type LockState struct {
	Kind LockKind      `json:"kind"`
	Code item.DoorCode `json:"code,omitempty"`
}

func LockedWith(code item.DoorCode) LockState { return LockState{Kind: Locked, Code: code} }

// AdjacentRoom is one outgoing edge of a room's map.
type AdjacentRoom struct {
	Name string    `json:"name"`
	Lock LockState `json:"lock"`
}

// Display renders the edge for goto listings, naming the required key color
// when locked.
func (a AdjacentRoom) Display() string {
	if a.Lock.Kind == Locked {
		return a.Name + " Locked: " + string(a.Lock.Code) + " key required"
	}
	return a.Name
}

// Map is the adjacency record for one room. Adjacency is declared
// symmetrically at generation time, though lock state may differ per
// direction.
type Map struct {
	CurrentRoom   string         `json:"current_room"`
	AdjacentRooms []AdjacentRoom `json:"adjacent_rooms"`
	OverlookRooms []string       `json:"overlook_rooms,omitempty"`
}

// Find returns the edge to the named room, case-insensitively.
func (m *Map) Find(name string) (*AdjacentRoom, bool) {
	for i := range m.AdjacentRooms {
		if strings.EqualFold(m.AdjacentRooms[i].Name, name) {
			return &m.AdjacentRooms[i], true
		}
	}
	return nil, false
}

// RevealSecrets flips every Secret edge to Unlocked and returns how many
// were revealed.
func (m *Map) RevealSecrets() int {
	n := 0
	for i := range m.AdjacentRooms {
		if m.AdjacentRooms[i].Lock.Kind == Secret {
			m.AdjacentRooms[i].Lock = LockState{Kind: Unlocked}
			n++
		}
	}
	return n
}

// Room is a container of people and items.
type Room struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        Type            `json:"type"`
	HasSecret   bool            `json:"has_secret,omitempty"` // secret closets only
	People      []*actor.Person `json:"people"`
	Items       item.List       `json:"items"`
}

// New returns a room with the given contents.
func New(name, description string, typ Type, people []*actor.Person, items item.List) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Type:        typ,
		People:      people,
		Items:       items,
	}
}

// FindItem looks up a room item by name, case-insensitively.
func (r *Room) FindItem(name string) (item.Item, bool) { return r.Items.Find(name) }

// FindPerson looks up an occupant by name, case-insensitively.
func (r *Room) FindPerson(name string) (*actor.Person, bool) {
	for _, p := range r.People {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

func (r *Room) AddItem(it item.Item) { r.Items = append(r.Items, it) }

// RemoveItem deletes the named item and reports whether it was present.
func (r *Room) RemoveItem(name string) bool { return r.Items.Remove(name) }

func (r *Room) AddPerson(p *actor.Person) { r.People = append(r.People, p) }

// RemovePerson deletes the named occupant and reports whether they were
// present.
func (r *Room) RemovePerson(name string) bool {
	for i, p := range r.People {
		if strings.EqualFold(p.Name, name) {
			r.People = append(r.People[:i], r.People[i+1:]...)
			return true
		}
	}
	return false
}
