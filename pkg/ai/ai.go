// Package ai drives NPC behavior: reacting to the player, fighting, fleeing
// to food, and spreading alarm between rooms.
package ai

import (
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/personality"
)

const wakeUpChance = 0.10

// knockout odds when one NPC hits another
const npcKnockoutChance = 10

type CallKind string

const (
	CallWait     CallKind = "wait"
	CallMove     CallKind = "move"
	CallAlert    CallKind = "alert"
	CallAlertAll CallKind = "alert_all"
)

// Call tells the engine how loud the player's last action was: Wait skips
// the turn entirely, Move runs a quiet turn, Alert wakes the current room,
// AlertAll spills into adjacent rooms too.
type Call struct {
	Kind   CallKind
	Target actor.Target
}

func Wait() Call                        { return Call{Kind: CallWait} }
func Move() Call                        { return Call{Kind: CallMove} }
func Alert(target actor.Target) Call    { return Call{Kind: CallAlert, Target: target} }
func AlertAll(target actor.Target) Call { return Call{Kind: CallAlertAll, Target: target} }

// Run executes one AI turn over the current room.
func Run(env *game.Environment, call Call) {
	// Snapshot: people may leave the room mid-turn.
	people := make([]*actor.Person, len(env.Room.People))
	copy(people, env.Room.People)

	switch call.Kind {
	case CallMove:
		for _, p := range people {
			aiMove(env, p)
		}
	case CallAlert, CallAlertAll:
		for _, p := range people {
			aiAlert(call.Target, env, p)
			aiMove(env, p)
		}
		if call.Kind == CallAlertAll {
			alertAdjacentRooms(call.Target, env)
		}
	}
}

// aiMove ticks status effects, decides an action when the person is not
// under player command, and carries the action out.
func aiMove(env *game.Environment, p *actor.Person) {
	wasDead := p.State == actor.StateDead
	p.TickPoison(env.Out)
	if p.State == actor.StateDead {
		// Poison is always player-applied, so a death this tick is the
		// player's kill. A corpse from an earlier turn is not.
		if !wasDead {
			env.RecordKill(p)
		}
		return
	}

	if !p.Commanded {
		p.Action = decideAction(env, p)
	}
	takeAction(env, p)
}

// decideAction picks what a free-willed person does this turn.
func decideAction(env *game.Environment, p *actor.Person) actor.Action {
	if p.Commanded || p.Action.Kind == actor.ActionGoto {
		return p.Action
	}

	switch p.State {
	case actor.StateDead, actor.StateAsleep, actor.StateUnconscious:
		dropIncapacitatedCompanion(env, p)
		if p.State == actor.StateUnconscious {
			return actor.Action{Kind: actor.ActionTryWakeUp}
		}
		return actor.Action{Kind: actor.ActionNone}
	}

	if p.Health <= 50 && p.HoldingFood {
		return actor.Action{Kind: actor.ActionUseFood}
	}

	for _, it := range env.Room.Items {
		if it.Kind() == item.KindConsumable {
			return actor.Action{Kind: actor.ActionPickupItem, Item: it.ItemName()}
		}
	}

	if p.Awareness.Kind == actor.Hostile {
		return actor.Action{Kind: actor.ActionAttack}
	}
	return actor.Action{Kind: actor.ActionNone}
}

func dropIncapacitatedCompanion(env *game.Environment, p *actor.Person) {
	if env.Player.Companion != "" && strings.EqualFold(env.Player.Companion, p.Name) {
		env.Out.Printf("%s is no longer your companion because they were incapacitated", p.Name)
		env.Player.SetCompanion(env.Out, "")
	}
}

func takeAction(env *game.Environment, p *actor.Person) {
	if p.State == actor.StateDead {
		return
	}

	switch p.Action.Kind {
	case actor.ActionAttack:
		target := actor.Target{Kind: actor.NoTarget}
		if p.Awareness.Kind == actor.Hostile {
			target = p.Awareness.Target
		}
		attack(env, p, target)
	case actor.ActionUseFood:
		useFood(env, p)
	case actor.ActionGoto:
		gotoRoom(env, p, p.Action.Room)
	case actor.ActionTryWakeUp:
		tryWakeUp(env, p)
	case actor.ActionPickupItem:
		pickupItem(env, p, p.Action.Item)
	case actor.ActionSuicide:
		commitSuicide(env, p)
	}
}

// attack has the person strike their target with their best weapon, or bare
// hands. Ranged weapons burn ammo and are discarded on the last round.
func attack(env *game.Environment, p *actor.Person, target actor.Target) {
	damage := actor.DefaultDamage

	if p.HoldingWeapon {
		weapon := firstWeapon(p)
		switch w := weapon.(type) {
		case *item.Melee:
			damage = w.Damage
		case *item.Ranged:
			damage = w.Damage
			if w.Ammo > 1 {
				w.Ammo--
			} else {
				p.RemoveItem(w.Name)
				p.HoldingWeapon = false
			}
		default:
			env.Out.Printf("AI holding weapon failure %s", p.Name)
		}
	}

	switch target.Kind {
	case actor.TargetPlayer:
		env.Out.Printf("%s %s attacked you for %d damage", p.Type, p.Name, damage)
		env.Player.ApplyDamage(damage)
		env.CheckPlayer()
		p.Commanded = false
	case actor.TargetPerson:
		victim, ok := env.FindPerson(target.Name)
		if !ok {
			env.Out.Printf("AI targeting error for %s", p.Name)
			return
		}
		env.Out.Printf("%s %s attacked %s for %d damage", p.Type, p.Name, target.Name, damage)
		victim.TakeDamage(env.Rng, env.Out, damage, npcKnockoutChance)
		victim.AttackResponse(env.Out, actor.Target{Kind: actor.TargetPerson, Name: p.Name})
		if victim.State == actor.StateDead {
			p.SetAwareness(actor.Awareness{Kind: actor.Aware})
			env.CheckPersonObjectives(victim)
		}
		p.Commanded = false
	default:
		env.Out.Printf("AI targeting error for %s", p.Name)
	}
}

func firstWeapon(p *actor.Person) item.Weapon {
	for _, it := range p.Items {
		if w, ok := item.AsWeapon(it); ok {
			return w
		}
	}
	return nil
}

// useFood has the person eat from their held consumable, with all the side
// effects that implies.
func useFood(env *game.Environment, p *actor.Person) {
	var food *item.Consumable
	for _, it := range p.Items {
		if c, ok := it.(*item.Consumable); ok {
			food = c
			break
		}
	}
	if food == nil {
		env.Out.Printf("AI consume food error for %s", p.Name)
		return
	}

	env.Out.Printf("%s consumed some of %s", p.Name, food.Name)
	env.Out.Printf("Health: %d", p.Health)
	p.AddHealth(food.HealthBonus)
	if food.Poisoned {
		p.Poisoned = true
	}
	if food.Alcohol {
		p.MakeDrunk(env.Out)
	}
	food.UsesLeft--
	if food.UsesLeft <= 0 {
		env.Out.Printf("%s was used up", food.Name)
		p.RemoveItem(food.Name)
		p.HoldingFood = false
	}
	p.Commanded = false
}

// gotoRoom moves the person to another room in the world, dropping them as
// the player's companion if they were one.
func gotoRoom(env *game.Environment, p *actor.Person, roomName string) {
	next, _, err := env.Rooms.Get(roomName)
	if err != nil {
		env.Out.Printf("AI goto failure: %s", err)
		return
	}
	p.Commanded = false
	p.Action = actor.Action{Kind: actor.ActionNone}
	next.AddPerson(p)
	env.Out.Printf("%s moved to %s", p.Name, next.Name)
	env.Room.RemovePerson(p.Name)
	if env.Player.Companion != "" && strings.EqualFold(env.Player.Companion, p.Name) {
		env.Player.SetCompanion(env.Out, "")
	}
}

func tryWakeUp(env *game.Environment, p *actor.Person) {
	if env.Rng.Float64() < wakeUpChance {
		env.Out.Printf("%s regained consciousness", p.Name)
		p.State = actor.StateNormal
	}
}

// pickupItem has the person take an item from the room, subject to the one
// weapon / one consumable carrying limits.
func pickupItem(env *game.Environment, p *actor.Person, itemName string) {
	it, ok := env.FindItem(itemName)
	if !ok {
		env.Out.Printf("Internal Error: \"pickupItem\" for %s. Cannot find item %s", p.Name, itemName)
		return
	}
	p.Commanded = false

	if it.Kind() == item.KindConsumable {
		if p.HoldingFood {
			env.Out.Printf("%s is already holding a consumable item", p.Name)
			return
		}
		p.HoldingFood = true
	} else if _, isWeapon := item.AsWeapon(it); isWeapon {
		if p.HoldingWeapon {
			env.Out.Printf("%s is already holding a weapon", p.Name)
			return
		}
		p.HoldingWeapon = true
	}

	env.Out.Printf("%s picked up %s", p.Name, itemName)
	env.Room.RemoveItem(it.ItemName())
	p.AddItem(it)
}

func commitSuicide(env *game.Environment, p *actor.Person) {
	env.Out.Printf("%s commited suicide", p.Name)
	p.State = actor.StateDead
	p.Health = 0
}

// updateAwareness escalates one person's perception toward the alert target.
// Guards and the brave turn hostile, the fearful grow afraid, the rest
// merely notice.
func updateAwareness(env *game.Environment, alertTarget actor.Target, p *actor.Person) {
	if p.State != actor.StateNormal {
		return
	}

	var next actor.Awareness
	switch {
	case p.Type == actor.TypeGuard || p.Personality.Bravery == personality.Brave:
		next = actor.Awareness{Kind: actor.Hostile, Target: alertTarget}
	case p.Personality.Bravery == personality.Fearful:
		next = actor.Awareness{Kind: actor.Afraid}
		p.AddFear(env.Out, personality.Up(1))
	default:
		next = actor.Awareness{Kind: actor.Aware}
	}

	if p.Awareness != next {
		p.SetAwareness(next)
		env.Out.Printf("%s is %s", p.Name, p.Awareness)
	}
}

// aiAlert rouses one person. Detection strips the player's disguise.
func aiAlert(alertTarget actor.Target, env *game.Environment, p *actor.Person) {
	if p.State == actor.StateDead {
		return
	}
	if p.State == actor.StateAsleep {
		p.State = actor.StateNormal
	}
	updateAwareness(env, alertTarget, p)
	if alertTarget.Kind == actor.TargetPlayer && env.Player.Disguise != "" {
		env.Player.Disguise = ""
	}
}

// alertAdjacentRooms spreads the alarm one room outward, printing a room
// header whenever the noise reaches someone new.
func alertAdjacentRooms(alertTarget actor.Target, env *game.Environment) {
	for _, adj := range env.Map.AdjacentRooms {
		rm, _, err := env.Rooms.Get(adj.Name)
		if err != nil {
			env.Out.Println(err.Error())
			continue
		}
		fresh := 0
		for _, p := range rm.People {
			if p.Awareness.Kind == actor.Unaware || p.Awareness.Kind == actor.Warn {
				fresh++
			}
		}
		if fresh > 0 {
			env.Out.Printf("-%s:", rm.Name)
		}
		for _, p := range rm.People {
			updateAwareness(env, alertTarget, p)
		}
	}
}
