// Package game holds the mutable aggregate root of a running session: the
// player, the loaded room, objectives, the clock and the game status.
package game

import (
	"math/rand"
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

type Status string

const (
	StatusContinue   Status = "continue"
	StatusExit       Status = "exit"
	StatusPlayerDead Status = "player_dead"
	StatusWin        Status = "win"
	StatusPartialWin Status = "partial_win"
)

// RespawnData is a queued extra life.
type RespawnData struct {
	Name   string             `json:"name"`
	Gender personality.Gender `json:"gender"`
}

type Accolades struct {
	Kills int `json:"kills"`
}

// Environment is the aggregate root. Out, Rng and Rooms are runtime wiring
// injected by the host; everything else persists in the save document.
type Environment struct {
	Player       *actor.Player   `json:"player"`
	Room         *room.Room      `json:"room"`
	Map          *room.Map       `json:"map"`
	Time         Time            `json:"time"`
	Status       Status          `json:"status"`
	ExtraLives   []RespawnData   `json:"extra_lives"`
	UpdatePeople []*actor.Person `json:"update_people"`
	Objectives   []Objective     `json:"objectives"`
	Accolades    Accolades       `json:"accolades"`
	MoveCount    int             `json:"move_count"`
	VisitedRooms []string        `json:"visited_rooms"`

	Rooms *world.Rooms `json:"-"`
	Out   *output.Log  `json:"-"`
	Rng   *rand.Rand   `json:"-"`
}

// FindPerson looks up an occupant of the current room.
func (e *Environment) FindPerson(name string) (*actor.Person, bool) {
	return e.Room.FindPerson(name)
}

// FindItem looks up an item in the current room.
func (e *Environment) FindItem(name string) (item.Item, bool) {
	return e.Room.FindItem(name)
}

func (e *Environment) AddMove() {
	e.MoveCount++
	e.Time.Add(2)
}

// AddVisited records a room visit once.
func (e *Environment) AddVisited(name string) {
	for _, v := range e.VisitedRooms {
		if strings.EqualFold(v, name) {
			return
		}
	}
	e.VisitedRooms = append(e.VisitedRooms, name)
}

// AddLife queues an extra life.
func (e *Environment) AddLife(life RespawnData) {
	e.ExtraLives = append(e.ExtraLives, life)
}

// CheckPlayer enforces player death: a queued extra life reincarnates the
// player at full health, otherwise the game ends.
func (e *Environment) CheckPlayer() {
	if e.Player.Health > 0 {
		return
	}
	e.Player.Health = 0
	if len(e.ExtraLives) > 0 {
		next := e.ExtraLives[0]
		e.ExtraLives = e.ExtraLives[1:]
		e.Out.Printf("You have been reincarnated as %s, %s", next.Name, next.Gender)
		e.Player.Health = 100
		e.Player.Name = next.Name
		e.Player.Gender = next.Gender
		return
	}
	e.Status = StatusPlayerDead
}

// ApplyBadActionToAll lets every aware, normal-state occupant judge the
// player's latest stunt.
func (e *Environment) ApplyBadActionToAll() {
	for _, p := range e.Room.People {
		if p.Awareness.Kind != actor.Unaware && p.State == actor.StateNormal {
			p.BadActionResponse(e.Out)
		}
	}
}

// UpdatePeopleStatus ticks status effects on people who left the room while
// afflicted.
func (e *Environment) UpdatePeopleStatus() {
	for _, p := range e.UpdatePeople {
		wasDead := p.State == actor.StateDead
		p.TickPoison(e.Out)
		if !wasDead && p.State == actor.StateDead {
			e.RecordKill(p)
		}
	}
}

// TrackPerson adds someone to the status side list when they carry a ticking
// effect and are not already tracked.
func (e *Environment) TrackPerson(p *actor.Person) {
	if !p.HasStatusEffect() {
		return
	}
	for _, u := range e.UpdatePeople {
		if strings.EqualFold(u.Name, p.Name) {
			return
		}
	}
	e.UpdatePeople = append(e.UpdatePeople, p)
}

// RevealPassageways flips every secret edge of the current map to unlocked.
// Generation guarantees all linked mission rooms appear in the passageway
// list, so revealing once reveals them all.
func (e *Environment) RevealPassageways() {
	e.Map.RevealSecrets()
}

// CheckItemObjectives completes any intel objective matching a picked-up
// item.
func (e *Environment) CheckItemObjectives(it item.Item) {
	for i := range e.Objectives {
		o := &e.Objectives[i]
		if o.Kind == ObjectiveCollectIntel && !o.Completed && o.Name == it.ItemName() {
			e.Out.Printf("You completed an Objective: CollectIntel-%s", o.Name)
			o.Completed = true
		}
	}
}

// RecordKill credits the player with a kill and completes any matching
// kill objective. Ordered NPC-on-NPC kills bypass this and only check
// objectives.
func (e *Environment) RecordKill(killed *actor.Person) {
	e.Accolades.Kills++
	e.CheckPersonObjectives(killed)
}

// CheckPersonObjectives completes any kill objective matching a dead person.
func (e *Environment) CheckPersonObjectives(killed *actor.Person) {
	for i := range e.Objectives {
		o := &e.Objectives[i]
		if o.Kind == ObjectiveKill && !o.Completed && o.Name == killed.Name {
			e.Out.Printf("You completed an Objective: Kill-%s", o.Name)
			o.Completed = true
			o.TargetState = TargetEliminated
		}
	}
}

// CompletedObjectives counts finished objectives.
func (e *Environment) CompletedObjectives() int {
	n := 0
	for _, o := range e.Objectives {
		if o.Completed {
			n++
		}
	}
	return n
}

// AllObjectivesComplete reports whether every objective is done.
func (e *Environment) AllObjectivesComplete() bool {
	return e.CompletedObjectives() == len(e.Objectives)
}
