package command

import (
	"fmt"
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/personality"
)

// punchDamage and punchKOChance govern bare-handed attacks.
const (
	punchDamage   = 10
	punchKOChance = 8
)

// Approach closes the distance to one person, which melee attacks require.
type Approach struct {
	Person string
}

func (c *Approach) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	env.Out.Printf("You approached %s", p.Name)
	env.Player.CloseTarget = p.Name
	return ai.Move(), nil
}

// Attack strikes a person with the equipped weapon. Melee weapons require a
// close target; ranged weapons burn ammo. How loud the turn gets depends on
// the weapon's visibility.
type Attack struct {
	Person string
}

func (c *Attack) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	equipped, ok := env.Player.Equipped()
	if !ok {
		return ai.Call{}, fmt.Errorf("You do not have a weapon equipped")
	}

	wasDead := p.State == actor.StateDead

	switch w := equipped.(type) {
	case *item.Melee:
		if env.Player.CloseTarget == "" || !strings.EqualFold(env.Player.CloseTarget, p.Name) {
			return ai.Call{}, fmt.Errorf("You are not close enough to %s for a melee attack", p.Name)
		}
		p.ApplyAttack(env.Rng, env.Out, w.Damage, w.KOChance, w.Poisoned)
		env.Out.Printf("You melee attacked %s with %s for %d damage", p.Name, w.Name, w.Damage)
		printCombatStatus(env, p)
		env.ApplyBadActionToAll()
		if !wasDead && p.State == actor.StateDead {
			env.RecordKill(p)
			env.Player.ClearCloseTargetIf(p.Name)
		}
		return visibilityCall(w.Visibility), nil

	case *item.Ranged:
		if w.Ammo <= 0 {
			return ai.Call{}, fmt.Errorf("%s is out of ammo", w.Name)
		}
		p.ApplyAttack(env.Rng, env.Out, w.Damage, 0, false)
		env.Out.Printf("You shot %s with %s for %d damage", p.Name, w.Name, w.Damage)
		printCombatStatus(env, p)
		w.Ammo--
		env.ApplyBadActionToAll()
		if !wasDead && p.State == actor.StateDead {
			env.RecordKill(p)
		}
		return visibilityCall(w.Visibility), nil

	default:
		return ai.Call{}, fmt.Errorf("%s cannot be used as a weapon", equipped.Label())
	}
}

// visibilityCall maps weapon visibility to how much attention the attack
// draws. Low-visibility weapons stay quiet; everything else alerts the room.
func visibilityCall(v item.Visibility) ai.Call {
	if v == item.VisibilityLow {
		return ai.Move()
	}
	return ai.Alert(actor.Target{Kind: actor.TargetPlayer})
}

func printCombatStatus(env *game.Environment, p *actor.Person) {
	env.Out.Printf("%s:\nHealth: %d, State: %s, Awareness: %s", p.Name, p.Health, p.State, p.Awareness)
}

// Punch hits a close target bare-handed: small damage, no ammo, never misses.
type Punch struct {
	Person string
}

func (c *Punch) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if env.Player.CloseTarget == "" || !strings.EqualFold(env.Player.CloseTarget, p.Name) {
		return ai.Call{}, fmt.Errorf("%s is not in range for melee attacks", c.Person)
	}

	wasDead := p.State == actor.StateDead
	p.ApplyAttack(env.Rng, env.Out, punchDamage, punchKOChance, false)
	env.Out.Printf("You punched %s for %d damage", p.Name, punchDamage)
	printCombatStatus(env, p)
	if !wasDead && p.State == actor.StateDead {
		env.RecordKill(p)
		env.Player.ClearCloseTargetIf(p.Name)
	}
	env.ApplyBadActionToAll()
	return ai.Move(), nil
}

// ChokeOut renders a person unconscious. Alert people get a chance to
// resist, and there is a small chance the struggle draws attention.
type ChokeOut struct {
	Person string
}

func (c *ChokeOut) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateUnconscious {
		return ai.Call{}, fmt.Errorf("%s is already unconscious", p.Name)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}

	if p.Awareness.Kind == actor.Unaware || env.Rng.Intn(100) < actor.AwareKnockoutChance {
		env.Out.Printf("You knocked %s unconscious", p.Name)
		p.State = actor.StateUnconscious
		p.Action = actor.Action{Kind: actor.ActionTryWakeUp}
		p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
		if env.Rng.Float64() < 0.25 {
			return ai.Alert(actor.Target{Kind: actor.TargetPlayer}), nil
		}
		return ai.Move(), nil
	}
	env.Out.Printf("%s resisted your attempts to knock %s unconscious", p.Name, p.ObjectPronoun())
	return ai.Move(), nil
}

// Apply poisons a melee weapon or consumable in the player's inventory,
// consuming the poison.
type Apply struct {
	Poison string
	Target string
}

func (c *Apply) Run(env *game.Environment) (ai.Call, error) {
	poison, ok := env.Player.FindItem(c.Poison)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Poison)
	}
	if poison.Kind() != item.KindPoison {
		return ai.Call{}, fmt.Errorf("%s is not a poison. It cannot be applied to an item", c.Poison)
	}
	target, ok := env.Player.FindItem(c.Target)
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Target, env.Room.Name)
	}

	switch t := target.(type) {
	case *item.Consumable:
		if t.Poisoned {
			return ai.Call{}, fmt.Errorf("%s is already poisoned", t.Name)
		}
		t.Poisoned = true
	case *item.Melee:
		if t.Poisoned {
			return ai.Call{}, fmt.Errorf("%s is already poisoned", t.Name)
		}
		t.Poisoned = true
	default:
		return ai.Call{}, fmt.Errorf("%s is not a poisonable item", target.ItemName())
	}

	env.Out.Printf("You applied poison %s to %s", c.Poison, target.ItemName())
	env.Player.RemoveItem(poison.ItemName())
	return ai.Move(), nil
}

// Capture recruits a terrified person as an extra life, removing them from
// the world.
type Capture struct {
	Person string
}

func (c *Capture) Run(env *game.Environment) (ai.Call, error) {
	if env.Player.Companion != "" && strings.EqualFold(env.Player.Companion, c.Person) {
		env.Player.Companion = ""
	}

	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.Personality.FearClass() != personality.Terrified {
		return ai.Call{}, fmt.Errorf("%s is not afraid enough to be captured and brainwashed into an assasin", p.Name)
	}

	env.Out.Printf("You captured %s for an extra life", p.Name)
	env.Room.RemovePerson(p.Name)
	env.AddLife(game.RespawnData{Name: p.Name, Gender: p.Gender})
	env.ApplyBadActionToAll()
	return ai.Move(), nil
}
