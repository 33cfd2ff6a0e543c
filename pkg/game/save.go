package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"hitman/pkg/output"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

// SaveDoc is the single persisted document: the environment plus every
// generated room snapshot.
type SaveDoc struct {
	ID          uuid.UUID    `json:"id"`
	SavedAt     time.Time    `json:"saved_at"`
	Environment *Environment `json:"environment"`
	RoomData    *world.Rooms `json:"room_data"`
}

// NewSaveDoc snapshots the environment and its room store under a fresh ID.
func NewSaveDoc(env *Environment) *SaveDoc {
	return &SaveDoc{
		ID:          uuid.New(),
		SavedAt:     time.Now().UTC(),
		Environment: env,
		RoomData:    env.Rooms,
	}
}

// Runtime restores the runtime wiring a decoded save document lacks: the room
// store, output log and rng, plus the pointer aliasing between the live room
// and its store entry that JSON decoding severs.
func (d *SaveDoc) Runtime(out *output.Log, rng *rand.Rand) (*Environment, error) {
	env := d.Environment
	if env == nil || d.RoomData == nil {
		return nil, fmt.Errorf("save document %s is incomplete", d.ID)
	}
	env.Rooms = d.RoomData
	env.Out = out
	env.Rng = rng

	rm, m, err := env.Rooms.Get(env.Room.Name)
	if err != nil {
		return nil, fmt.Errorf("save document %s: %w", d.ID, err)
	}
	env.Room = rm
	env.Map = m

	// The tracked-people side list must alias room occupants, not decoded
	// copies, or their poison would tick on ghosts.
	for i, tracked := range env.UpdatePeople {
		env.Rooms.Each(func(r *room.Room, _ *room.Map) {
			if p, ok := r.FindPerson(tracked.Name); ok {
				env.UpdatePeople[i] = p
			}
		})
	}
	return env, nil
}
