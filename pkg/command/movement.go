package command

import (
	"fmt"
	"sort"
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
	"hitman/pkg/room"
)

// Goto moves the player through an adjacent door. With no argument it lists
// the visible exits instead.
type Goto struct {
	Room string // empty lists the nearby rooms
}

func (c *Goto) Run(env *game.Environment) (ai.Call, error) {
	return travelTo(env, c.Room, false)
}

// ForceGoto breaks through a locked door, which the guards notice.
type ForceGoto struct {
	Room string
}

func (c *ForceGoto) Run(env *game.Environment) (ai.Call, error) {
	return travelTo(env, c.Room, true)
}

func travelTo(env *game.Environment, name string, force bool) (ai.Call, error) {
	if name == "" {
		listExits(env)
		return ai.Wait(), nil
	}
	if strings.EqualFold(name, env.Room.Name) {
		return ai.Call{}, fmt.Errorf("You are already there")
	}
	adj, ok := env.Map.Find(name)
	if !ok {
		return ai.Call{}, roomFindFailure(name)
	}
	if adj.Lock.Kind == room.Locked && !force {
		return ai.Call{}, fmt.Errorf("%s is locked. %s key required", adj.Name, adj.Lock.Code)
	}

	next, nextMap, err := env.Rooms.Get(adj.Name)
	if err != nil {
		return ai.Call{}, err
	}

	alert := force && adj.Lock.Kind == room.Locked
	if alert {
		env.Out.Printf("You broke into %s. The guards have been alerted.", adj.Name)
	}
	// Patrolling guards challenge anyone entering without a disguise.
	if env.Player.Disguise == "" {
		for _, p := range next.People {
			if p.Awareness.Kind == actor.Warn && p.State == actor.StateNormal {
				env.Out.Printf("%s: You are not allowed to be here", p.Name)
				alert = true
				break
			}
		}
	}

	enterRoom(env, next, nextMap)
	if alert {
		return ai.Alert(actor.Target{Kind: actor.TargetPlayer}), nil
	}
	return ai.Move(), nil
}

// listExits shows the non-secret doors, unlocked ones first.
func listExits(env *game.Environment) {
	var exits []room.AdjacentRoom
	for _, adj := range env.Map.AdjacentRooms {
		if adj.Lock.Kind != room.Secret {
			exits = append(exits, adj)
		}
	}
	sort.SliceStable(exits, func(i, j int) bool {
		return exits[i].Lock.Kind == room.Unlocked && exits[j].Lock.Kind != room.Unlocked
	})
	for _, adj := range exits {
		env.Out.Println(adj.Display())
	}
}

// enterRoom swaps the current room, bringing a healthy companion along and
// keeping the poison side list consistent across the move.
func enterRoom(env *game.Environment, next *room.Room, nextMap *room.Map) {
	for _, p := range env.Room.People {
		env.TrackPerson(p)
	}

	if companion := env.Player.Companion; companion != "" {
		comp, ok := env.Room.FindPerson(companion)
		if ok && comp.State == actor.StateNormal {
			env.Room.RemovePerson(comp.Name)
			next.AddPerson(comp)
			env.Out.Printf("Moved to %s with %s", next.Name, comp.Name)
		} else {
			env.Player.Companion = ""
			env.Out.Printf("Moved to %s", next.Name)
		}
	} else {
		env.Out.Printf("Moved to %s", next.Name)
	}

	// People in the destination room tick through the room AI again, so
	// stop tracking them separately.
	kept := env.UpdatePeople[:0]
	for _, p := range env.UpdatePeople {
		if _, here := next.FindPerson(p.Name); !here {
			kept = append(kept, p)
		}
	}
	env.UpdatePeople = kept

	env.Room = next
	env.Map = nextMap
	env.AddVisited(next.Name)
}

// Teleport jumps straight to any room by name. Debugging convenience.
type Teleport struct {
	Room string
}

func (c *Teleport) Run(env *game.Environment) (ai.Call, error) {
	next, nextMap, err := env.Rooms.Get(c.Room)
	if err != nil {
		return ai.Call{}, err
	}
	env.Room = next
	env.Map = nextMap
	env.AddVisited(next.Name)
	return ai.Wait(), nil
}

// Peek lists the items and people in an adjacent room.
type Peek struct {
	Room string
}

func (c *Peek) Run(env *game.Environment) (ai.Call, error) {
	adj, ok := env.Map.Find(c.Room)
	if !ok {
		return ai.Call{}, fmt.Errorf("%s is not an adjacent area", c.Room)
	}
	next, _, err := env.Rooms.Get(adj.Name)
	if err != nil {
		return ai.Call{}, err
	}
	env.Out.Println("Items:")
	for _, it := range next.Items {
		env.Out.Println(it.Label())
	}
	env.Out.Println("People:")
	for _, p := range next.People {
		env.Out.Println(p.FullInfo())
	}
	return ai.Move(), nil
}

// Scout names the people in a room the current location overlooks.
type Scout struct {
	Room string
}

func (c *Scout) Run(env *game.Environment) (ai.Call, error) {
	if len(env.Map.OverlookRooms) == 0 {
		return ai.Call{}, fmt.Errorf("The current location does not have any scoutable locations")
	}
	var match string
	for _, name := range env.Map.OverlookRooms {
		if strings.EqualFold(name, c.Room) {
			match = name
			break
		}
	}
	if match == "" {
		return ai.Call{}, fmt.Errorf("%s is not a scoutable location", c.Room)
	}
	rm, _, err := env.Rooms.Get(match)
	if err != nil {
		return ai.Call{}, err
	}
	env.Out.Println("Scout:")
	for _, p := range rm.People {
		env.Out.Println(p.Name)
	}
	return ai.Wait(), nil
}

// Survey maps out the current location: its exits and anything it overlooks.
type Survey struct{}

func (c *Survey) Run(env *game.Environment) (ai.Call, error) {
	env.Out.Printf("Current Room: %s", env.Map.CurrentRoom)
	env.Out.Println("Adjacent Rooms:")
	for _, adj := range env.Map.AdjacentRooms {
		if adj.Lock.Kind != room.Secret {
			env.Out.Println(adj.Display())
		}
	}
	if len(env.Map.OverlookRooms) > 0 {
		env.Out.Println("Overlook Rooms:")
		for _, name := range env.Map.OverlookRooms {
			env.Out.Println(name)
		}
	}
	return ai.Wait(), nil
}

// WaitCmd passes the turn to the NPCs.
type WaitCmd struct{}

func (c *WaitCmd) Run(env *game.Environment) (ai.Call, error) {
	env.Out.Println("You let the AI take a turn")
	return ai.Move(), nil
}
