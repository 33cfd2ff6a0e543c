package command

import (
	"fmt"
	"sort"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/personality"
	"hitman/pkg/room"
)

// Pickup moves an item from the room into the player's inventory. Picking up
// intel completes the matching objective.
type Pickup struct {
	Item string
}

func (c *Pickup) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Room.FindItem(c.Item)
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Item, env.Room.Name)
	}
	if item.IsHeavy(it) {
		return ai.Call{}, fmt.Errorf("The item %s is too heavy to pick up", c.Item)
	}
	env.Out.Printf("You picked up %s", c.Item)
	env.Room.RemoveItem(it.ItemName())
	env.Player.AddItem(it)
	if it.Kind() == item.KindIntel {
		env.CheckItemObjectives(it)
	}
	return ai.Move(), nil
}

// Drop moves an inventory item into the room, unequipping it if held.
type Drop struct {
	Item string
}

func (c *Drop) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	env.Out.Printf("You dropped %s", it.ItemName())
	env.Player.RemoveItem(it.ItemName())
	env.Room.AddItem(it)
	return ai.Move(), nil
}

// Place puts an inventory item inside a container in the room.
type Place struct {
	Item      string
	Container string
}

func (c *Place) Run(env *game.Environment) (ai.Call, error) {
	target, ok := env.Room.FindItem(c.Container)
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Item, env.Room.Name)
	}
	container, ok := target.(*item.Container)
	if !ok {
		return ai.Call{}, fmt.Errorf("The item %s cannot store any items", c.Container)
	}
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	env.Out.Printf("You put %s in %s", c.Item, c.Container)
	env.Player.RemoveItem(it.ItemName())
	container.Items = append(container.Items, it)
	return ai.Move(), nil
}

// TakeFrom takes an item out of a person's pockets or a container. People
// who are conscious only hand things over when they trust the player;
// conscious guards never do.
type TakeFrom struct {
	Target string
	Item   string
}

func (c *TakeFrom) Run(env *game.Environment) (ai.Call, error) {
	if p, ok := env.Room.FindPerson(c.Target); ok {
		it, ok := p.FindItem(c.Item)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s does not have the item %s", c.Target, c.Item)
		}
		if p.State == actor.StateNormal {
			if p.Type == actor.TypeGuard {
				return ai.Call{}, fmt.Errorf("You cannot take items from guards when they are conscious")
			}
			if p.Personality.Trust <= 2 {
				return ai.Call{}, fmt.Errorf("%s does not trust you enough to give you %s", c.Target, c.Item)
			}
		}
		p.RemoveItem(it.ItemName())
		switch it.(type) {
		case *item.Consumable:
			p.HoldingFood = false
		case *item.Melee, *item.Ranged:
			p.HoldingWeapon = false
		}
		env.Player.AddItem(it)
		env.Out.Printf("You took item %s from %s", it.ItemName(), p.Name)
		return ai.Move(), nil
	}

	target, ok := env.Room.FindItem(c.Target)
	if !ok {
		return ai.Call{}, fmt.Errorf("%s is not a valid person or container to take items from", c.Target)
	}
	container, ok := target.(*item.Container)
	if !ok {
		return ai.Call{}, fmt.Errorf("The item %s cannot store any items", c.Target)
	}
	it, ok := container.Items.Find(c.Item)
	if !ok {
		return ai.Call{}, fmt.Errorf("The item %s does not contain %s", c.Target, c.Item)
	}
	env.Out.Printf("You took %s from %s", c.Item, c.Target)
	container.Items.Remove(it.ItemName())
	env.Player.AddItem(it)
	return ai.Move(), nil
}

// Give hands an inventory item to a person. Food and weapons respect the one
// each carrying limits; distrustful people refuse and call for the guards.
type Give struct {
	Item   string
	Person string
}

func (c *Give) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}

	if p.Personality.Trust <= 2 {
		env.Out.Printf("%s does not trust you enough to accept item %s.\n%s has alerted the guards",
			p.Name, c.Item, p.Name)
		return ai.Alert(actor.Target{Kind: actor.TargetPlayer}), nil
	}

	if tryGiveItem(env, p, it) {
		env.Out.Printf("You gave %s to %s", c.Item, c.Person)
		env.Player.RemoveItem(it.ItemName())
	}
	return ai.Move(), nil
}

func tryGiveItem(env *game.Environment, p *actor.Person, it item.Item) bool {
	p.SetAwareness(actor.Awareness{Kind: actor.Aware})
	switch it.(type) {
	case *item.Consumable:
		if p.HoldingFood {
			env.Out.Printf("%s is already holding a consumable item", p.Name)
			return false
		}
		env.Out.Printf("You increased %s's trust in you", p.Name)
		p.HoldingFood = true
		p.AddItem(it)
		p.AddTrust(env.Out, personality.Up(4))
		p.SetAction(actor.Action{Kind: actor.ActionUseFood})
		return true
	case *item.Melee, *item.Ranged:
		if p.HoldingWeapon {
			env.Out.Printf("%s is already holding a weapon", p.Name)
			return false
		}
		p.HoldingWeapon = true
		p.AddItem(it)
		return true
	default:
		p.AddItem(it)
		return true
	}
}

// Consume eats or drinks an unpoisoned consumable from the inventory.
type Consume struct {
	Item string
}

func (c *Consume) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	food, ok := it.(*item.Consumable)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	if food.Poisoned {
		return ai.Call{}, fmt.Errorf("Item %s is poisoned. You cannot consume it.", food.Name)
	}

	env.Out.Printf("You consumed %s for %d health", food.Name, food.HealthBonus)
	env.Player.AddHealth(food.HealthBonus)
	food.UsesLeft--
	if food.UsesLeft <= 0 {
		env.Out.Printf("%s was used up", food.Name)
		env.Player.RemoveItem(food.Name)
	}
	return ai.Move(), nil
}

// Equip readies a weapon from the inventory.
type Equip struct {
	Item string
}

func (c *Equip) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		return ai.Call{}, inventoryItemFindFailure(c.Item)
	}
	if _, isWeapon := item.AsWeapon(it); !isWeapon {
		return ai.Call{}, fmt.Errorf("%s is not a weapon", it.ItemName())
	}
	env.Out.Println("You equipped " + it.ItemName())
	env.Player.Equip(it)
	return ai.Move(), nil
}

// Unequip hides the equipped weapon.
type Unequip struct{}

func (c *Unequip) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.Equipped()
	if !ok {
		return ai.Call{}, fmt.Errorf("You do not have a weapon equipped")
	}
	env.Out.Printf("You unequipped %s", it.ItemName())
	env.Player.Unequip()
	return ai.Move(), nil
}

// Inspect reads a clue, or reveals the rooms behind a hidden passageway.
type Inspect struct {
	Item string
}

func (c *Inspect) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.Player.FindItem(c.Item)
	if !ok {
		it, ok = env.Room.FindItem(c.Item)
	}
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Item, env.Room.Name)
	}

	switch v := it.(type) {
	case *item.Clue:
		env.Out.Printf("Clue - %s:\n%s", c.Item, v.Text)
		return ai.Wait(), nil
	case *item.HiddenPassageway:
		env.Out.Println("Hidden Passageway revealed: ")
		for _, name := range v.Rooms {
			env.Out.Println(name)
		}
		env.RevealPassageways()
		return ai.Wait(), nil
	default:
		return ai.Call{}, fmt.Errorf("%s is not a clue", c.Item)
	}
}

type DescribeKind string

const (
	DescribeArea   DescribeKind = "area"
	DescribeItem   DescribeKind = "item"
	DescribePerson DescribeKind = "person"
)

// Describe shows the description of the area, an item or a person.
type Describe struct {
	Kind DescribeKind
	Name string
}

func (c *Describe) Run(env *game.Environment) (ai.Call, error) {
	var desc string
	switch c.Kind {
	case DescribeArea:
		desc = env.Room.Description
	case DescribeItem:
		it, ok := env.Player.FindItem(c.Name)
		if !ok {
			it, ok = env.Room.FindItem(c.Name)
		}
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a valid item to get a description of", c.Name)
		}
		desc = it.ItemDescription()
	case DescribePerson:
		p, ok := env.Room.FindPerson(c.Name)
		if !ok {
			return ai.Call{}, fmt.Errorf("%s is not a describable person", c.Name)
		}
		desc = p.Description
	}
	env.Out.Printf("Description: %s", desc)
	return ai.Wait(), nil
}

// Search lists the room's contents, or looks inside a container.
type Search struct {
	Item string // empty means search the area
}

func (c *Search) Run(env *game.Environment) (ai.Call, error) {
	if c.Item == "" {
		env.Out.Println("Items:")
		for _, it := range env.Room.Items {
			env.Out.Println(it.Label())
		}
		env.Out.Println("People:")
		people := make([]*actor.Person, len(env.Room.People))
		copy(people, env.Room.People)
		sort.SliceStable(people, func(i, j int) bool {
			return people[i].State == actor.StateNormal && people[j].State != actor.StateNormal
		})
		for _, p := range people {
			env.Out.Println(p.FullInfo())
		}
		return ai.Wait(), nil
	}

	it, ok := env.Room.FindItem(c.Item)
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Item, env.Room.Name)
	}
	container, ok := it.(*item.Container)
	if !ok {
		return ai.Call{}, fmt.Errorf("The item %s does not contain any items", c.Item)
	}
	if len(container.Items) == 0 {
		env.Out.Printf("%s is empty", c.Item)
		return ai.Wait(), nil
	}
	env.Out.Printf("%s Items:", c.Item)
	for _, inner := range container.Items {
		env.Out.Println(inner.Label())
	}
	return ai.Wait(), nil
}

// Escape ends the run through an escape item. Leaving with unfinished
// objectives is only a partial win.
type Escape struct {
	Item string
}

func (c *Escape) Run(env *game.Environment) (ai.Call, error) {
	it, ok := env.FindItem(c.Item)
	if !ok {
		return ai.Call{}, roomItemFindFailure(c.Item, env.Room.Name)
	}
	if it.Kind() != item.KindEscape {
		return ai.Call{}, fmt.Errorf("%s is not an escape route", it.ItemName())
	}

	if env.AllObjectivesComplete() {
		env.Status = game.StatusWin
		env.Out.Printf("You have completed all objectives and escaped using %s", it.ItemName())
	} else {
		env.Status = game.StatusPartialWin
		env.Out.Printf("You have completed only %d/%d", env.CompletedObjectives(), len(env.Objectives))
	}
	return ai.Wait(), nil
}

// Unlock opens an adjacent locked door with the matching key, on every side
// that leads into the unlocked room.
type Unlock struct {
	Room string
}

func (c *Unlock) Run(env *game.Environment) (ai.Call, error) {
	adj, ok := env.Map.Find(c.Room)
	if !ok {
		return ai.Call{}, roomFindFailure(c.Room)
	}
	if adj.Lock.Kind != room.Locked {
		return ai.Call{}, fmt.Errorf("The door to %s is not locked", c.Room)
	}
	code := adj.Lock.Code

	hasKey := false
	for _, it := range env.Player.Items {
		if key, ok := it.(*item.Key); ok && key.Color == code {
			hasKey = true
			break
		}
	}
	if !hasKey {
		return ai.Call{}, fmt.Errorf("The door could not be unlocked. You do not have a %s key", code)
	}

	env.Out.Printf("You unlocked %s", c.Room)
	adj.Lock = room.LockState{Kind: room.Unlocked}

	// Every other room bordering the target also gets its edge unlocked.
	_, targetMap, err := env.Rooms.Get(adj.Name)
	if err != nil {
		env.Out.Println(err.Error())
		return ai.Move(), nil
	}
	for _, other := range targetMap.AdjacentRooms {
		if other.Name == env.Room.Name {
			continue
		}
		_, otherMap, err := env.Rooms.Get(other.Name)
		if err != nil {
			env.Out.Println(err.Error())
			continue
		}
		if edge, ok := otherMap.Find(adj.Name); ok && edge.Lock.Kind == room.Locked {
			edge.Lock = room.LockState{Kind: room.Unlocked}
		}
	}
	return ai.Move(), nil
}

// Disguise takes a worker's clothes. The worker must be out of commission
// first.
type Disguise struct {
	Person string
}

func (c *Disguise) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateNormal {
		env.Out.Printf("%s is not in a condition where you can take %s clothes", p.Name, p.PossessivePronoun())
		return ai.Wait(), nil
	}
	clothes, err := p.JobClothes()
	if err != nil {
		return ai.Call{}, err
	}
	env.Out.Println("You are now disguised as a " + string(clothes))
	env.Player.Disguise = clothes
	return ai.Move(), nil
}
