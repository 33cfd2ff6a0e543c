// Package world holds the in-memory store of every generated room and its
// adjacency map, keyed by lower-cased room name.
package world

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hitman/pkg/room"
)

// Entry pairs a room with its adjacency map.
type Entry struct {
	Room *room.Room `json:"room"`
	Map  *room.Map  `json:"map"`
}

// Rooms is the room store. The live room and map are copied out into the
// environment and written back on every transition.
type Rooms struct {
	entries map[string]Entry
}

func NewRooms() *Rooms {
	return &Rooms{entries: make(map[string]Entry)}
}

// Get fetches a room and its map by name.
func (r *Rooms) Get(name string) (*room.Room, *room.Map, error) {
	e, ok := r.entries[strings.ToLower(name)]
	if !ok {
		return nil, nil, fmt.Errorf("Error reading room '%s'", name)
	}
	return e.Room, e.Map, nil
}

// Put stores a room and its map under the room's lower-cased name.
func (r *Rooms) Put(rm *room.Room, m *room.Map) {
	r.entries[strings.ToLower(rm.Name)] = Entry{Room: rm, Map: m}
}

// Contains reports whether a room with the given name is stored.
func (r *Rooms) Contains(name string) bool {
	_, ok := r.entries[strings.ToLower(name)]
	return ok
}

// Names returns every stored room's display name, sorted.
func (r *Rooms) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Room.Name)
	}
	sort.Strings(names)
	return names
}

func (r *Rooms) Len() int { return len(r.entries) }

// Each visits every entry. Mutations through the pointers are visible in the
// store.
func (r *Rooms) Each(f func(*room.Room, *room.Map)) {
	for _, name := range r.Names() {
		e := r.entries[strings.ToLower(name)]
		f(e.Room, e.Map)
	}
}

func (r *Rooms) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.entries)
}

func (r *Rooms) UnmarshalJSON(data []byte) error {
	entries := make(map[string]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to decode room data: %w", err)
	}
	r.entries = entries
	return nil
}
