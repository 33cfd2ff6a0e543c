package actor

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
)

// Player is the assassin. Companion and CloseTarget are weak name references
// into the current room's people; the equipped item is always one of the
// inventory items.
type Player struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Gender      personality.Gender `json:"gender"`
	CloseTarget string             `json:"close_target,omitempty"`
	Disguise    Type               `json:"disguise,omitempty"`
	Companion   string             `json:"companion,omitempty"`
	Health      int                `json:"health"`
	Items       item.List          `json:"items"`

	equipped item.Item
}

// NewPlayer returns a healthy player with the given loadout.
func NewPlayer(name, description string, gender personality.Gender, items item.List) *Player {
	return &Player{
		Name:        name,
		Description: description,
		Gender:      gender,
		Health:      100,
		Items:       items,
	}
}

// ApplyAngryAttack is an NPC lashing out at the player; damage is a
// multiple of ten. Returns the damage dealt.
func (p *Player) ApplyAngryAttack(rng *rand.Rand) int {
	damage := 10 * (1 + rng.Intn(4))
	p.Health -= damage
	return damage
}

func (p *Player) ApplyDamage(damage int) { p.Health -= damage }
func (p *Player) AddHealth(bonus int)    { p.Health += bonus }

func (p *Player) AddItem(it item.Item) { p.Items = append(p.Items, it) }

// RemoveItem drops the named item, unequipping it first if needed.
func (p *Player) RemoveItem(name string) {
	p.UnequipIfHolding(name)
	p.Items.Remove(name)
}

// FindItem looks up an inventory item by name, case-insensitively.
func (p *Player) FindItem(name string) (item.Item, bool) { return p.Items.Find(name) }

// FindConsumable looks up an unpoisoned consumable by name. Poisoned food is
// excluded so the player cannot accidentally eat their own trap.
func (p *Player) FindConsumable(name string) (*item.Consumable, bool) {
	for _, it := range p.Items {
		c, ok := it.(*item.Consumable)
		if ok && !c.Poisoned && strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// ClearCloseTargetIf drops the close-target reference when it names the
// given person.
func (p *Player) ClearCloseTargetIf(personName string) {
	if p.CloseTarget != "" && strings.EqualFold(p.CloseTarget, personName) {
		p.CloseTarget = ""
	}
}

// SetCompanion records a new companion, announcing the change.
func (p *Player) SetCompanion(out *output.Log, name string) {
	p.Companion = name
	if name != "" {
		out.Printf("%s has joined you", name)
	} else {
		out.Println("Your companion has left you")
	}
}

// DisguiseString renders the prompt fragment for the current disguise.
func (p *Player) DisguiseString() string {
	if p.Disguise == "" {
		return ""
	}
	return "(" + string(p.Disguise) + ")"
}

// PrintStats writes the player's view-stats block.
func (p *Player) PrintStats(out *output.Log) {
	out.Println("Name: " + p.Name)
	out.Println("Description: " + p.Description)
	out.Println("Gender: " + string(p.Gender))
	if p.CloseTarget != "" {
		out.Println("Close Target: " + p.CloseTarget)
	}
	if p.Companion != "" {
		out.Println("Companion: " + p.Companion)
	}
	out.Printf("Health: %d", p.Health)
}

// Equipped returns the equipped item, if any.
func (p *Player) Equipped() (item.Item, bool) {
	if p.equipped == nil {
		return nil, false
	}
	return p.equipped, true
}

func (p *Player) Equip(it item.Item) { p.equipped = it }
func (p *Player) Unequip()           { p.equipped = nil }

// UnequipIfHolding clears the equipped slot when it holds the named item.
func (p *Player) UnequipIfHolding(name string) {
	if p.equipped != nil && strings.EqualFold(p.equipped.ItemName(), name) {
		p.equipped = nil
	}
}

// playerJSON is the wire shape; the equipped item persists as a name
// reference resolved against the inventory on load.
type playerJSON struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Gender      personality.Gender `json:"gender"`
	CloseTarget string             `json:"close_target,omitempty"`
	Disguise    Type               `json:"disguise,omitempty"`
	Companion   string             `json:"companion,omitempty"`
	Health      int                `json:"health"`
	Items       item.List          `json:"items"`
	Equipped    string             `json:"equipped,omitempty"`
}

func (p *Player) MarshalJSON() ([]byte, error) {
	pj := playerJSON{
		Name:        p.Name,
		Description: p.Description,
		Gender:      p.Gender,
		CloseTarget: p.CloseTarget,
		Disguise:    p.Disguise,
		Companion:   p.Companion,
		Health:      p.Health,
		Items:       p.Items,
	}
	if p.equipped != nil {
		pj.Equipped = p.equipped.ItemName()
	}
	return json.Marshal(pj)
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var pj playerJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return fmt.Errorf("failed to decode player: %w", err)
	}
	p.Name = pj.Name
	p.Description = pj.Description
	p.Gender = pj.Gender
	p.CloseTarget = pj.CloseTarget
	p.Disguise = pj.Disguise
	p.Companion = pj.Companion
	p.Health = pj.Health
	p.Items = pj.Items
	p.equipped = nil
	if pj.Equipped != "" {
		it, ok := p.Items.Find(pj.Equipped)
		if !ok {
			return fmt.Errorf("equipped item %q missing from inventory", pj.Equipped)
		}
		p.equipped = it
	}
	return nil
}
