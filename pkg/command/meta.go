package command

import (
	"encoding/json"
	"fmt"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
	"hitman/pkg/personality"
)

type OrderKind string

const (
	OrderAttack  OrderKind = "attack"
	OrderGoto    OrderKind = "goto"
	OrderPickup  OrderKind = "pickup"
	OrderStop    OrderKind = "stop"
	OrderSuicide OrderKind = "killyourself"
)

// Order commands a compliant NPC to act: attack someone, move, pick an item
// up, stop, or worse.
type Order struct {
	Person string
	Kind   OrderKind
	Target string
}

func (c *Order) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if !p.IsCompliant() || p.State == actor.StateDead {
		env.Out.Printf("%s will not take orders from you", p.Name)
		return ai.Move(), nil
	}

	switch c.Kind {
	case OrderAttack:
		victim, ok := env.FindPerson(c.Target)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a valid person for %s to attack", c.Target, p.Name)
		}
		p.SetAwareness(actor.Awareness{Kind: actor.Hostile, Target: actor.Target{Kind: actor.TargetPerson, Name: victim.Name}})
		p.SetAction(actor.Action{Kind: actor.ActionAttack})
		p.Commanded = true
		return ai.Move(), nil

	case OrderGoto:
		adj, ok := env.Map.Find(c.Target)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a valid location for %s to move to", c.Target, p.Name)
		}
		p.SetAction(actor.Action{Kind: actor.ActionGoto, Room: adj.Name})
		p.Commanded = true
		return ai.Move(), nil

	case OrderPickup:
		it, ok := env.Room.FindItem(c.Target)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a valid item for %s to pick up", c.Target, p.Name)
		}
		p.SetAction(actor.Action{Kind: actor.ActionPickupItem, Item: it.ItemName()})
		p.Commanded = true
		return ai.Move(), nil

	case OrderStop:
		p.SetAction(actor.Action{Kind: actor.ActionNone})
		p.Commanded = true
		p.SetAwareness(actor.Awareness{Kind: actor.Aware})
		return ai.Move(), nil

	default: // OrderSuicide
		if p.Personality.MoodClass() != personality.Depressed {
			return ai.Call{}, fmt.Errorf("%s is not sad enough to kill themselves", p.Name)
		}
		env.Out.Printf("%s has lost the will to live", p.Name)
		p.SetAction(actor.Action{Kind: actor.ActionSuicide})
		p.Commanded = true
		return ai.Move(), nil
	}
}

// FollowMe recruits a trusting person as a companion. Guards never follow.
type FollowMe struct {
	Person string
}

func (c *FollowMe) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.Type == actor.TypeGuard {
		return ai.Call{}, fmt.Errorf("%s will not be your companion", p.Name)
	}
	if p.Personality.Trust < 8 {
		return ai.Call{}, fmt.Errorf("%s does not trust you enough to follow you", p.Name)
	}
	env.Out.Printf("%s is your new companion", p.Name)
	env.Player.Companion = p.Name
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	return ai.Move(), nil
}

// LeaveMe dismisses the current companion.
type LeaveMe struct{}

func (c *LeaveMe) Run(env *game.Environment) (ai.Call, error) {
	if env.Player.Companion == "" {
		return ai.Call{}, fmt.Errorf("You do not have a companion")
	}
	env.Out.Printf("You have left your companion: %s", env.Player.Companion)
	env.Player.Companion = ""
	return ai.Move(), nil
}

type ViewKind string

const (
	ViewInventory    ViewKind = "inventory"
	ViewTime         ViewKind = "time"
	ViewPlayerStats  ViewKind = "player_stats"
	ViewPersonStats  ViewKind = "person_stats"
	ViewCompanion    ViewKind = "companion"
	ViewObjectives   ViewKind = "objectives"
	ViewVisitedRooms ViewKind = "visited_rooms"
)

// View shows one read-only slice of game state.
type View struct {
	Kind   ViewKind
	Person string // ViewPersonStats only
}

func (c *View) Run(env *game.Environment) (ai.Call, error) {
	switch c.Kind {
	case ViewInventory:
		env.Out.Println("Items:")
		for _, it := range env.Player.Items {
			env.Out.Println(it.Label())
		}
	case ViewTime:
		env.Out.Printf("Time: %s", env.Time)
	case ViewPersonStats:
		p, ok := env.FindPerson(c.Person)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a valid person in this room", c.Person)
		}
		p.PrintStats(env.Out)
	case ViewPlayerStats:
		env.Player.PrintStats(env.Out)
		env.Out.Printf("Kills: %d", env.Accolades.Kills)
	case ViewCompanion:
		if env.Player.Companion == "" {
			return ai.Call{}, fmt.Errorf("You do not have a companion")
		}
		env.Out.Printf("Companion: %s", env.Player.Companion)
	case ViewObjectives:
		for _, o := range env.Objectives {
			env.Out.Println(o.String())
		}
	case ViewVisitedRooms:
		for _, name := range env.VisitedRooms {
			env.Out.Println(name)
		}
	}
	return ai.Wait(), nil
}

// Quit ends the session.
type Quit struct{}

func (c *Quit) Run(env *game.Environment) (ai.Call, error) {
	env.Status = game.StatusExit
	return ai.Wait(), nil
}

// Save announces the save; the host persists the environment when it sees
// this command.
type Save struct{}

func (c *Save) Run(env *game.Environment) (ai.Call, error) {
	env.Out.Println("You saved the game")
	return ai.Wait(), nil
}

// Diagnose dumps the environment as JSON. Debugging convenience.
type Diagnose struct{}

func (c *Diagnose) Run(env *game.Environment) (ai.Call, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return ai.Call{}, fmt.Errorf("failed to dump environment: %w", err)
	}
	env.Out.Println(string(data))
	return ai.Wait(), nil
}
