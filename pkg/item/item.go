// Package item defines the closed set of item variants that can appear in
// rooms, inventories and containers, along with their JSON codec and the
// generation catalog.
package item

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindMelee            Kind = "melee_weapon"
	KindRanged           Kind = "ranged_weapon"
	KindKey              Kind = "key"
	KindClue             Kind = "clue"
	KindHiddenPassageway Kind = "hidden_passageway"
	KindConsumable       Kind = "consumable"
	KindContainer        Kind = "container"
	KindDisplay          Kind = "display"
	KindFurniture        Kind = "furniture"
	KindLargeDisplay     Kind = "large_display"
	KindEscape           Kind = "escape"
	KindIntel            Kind = "intel"
	KindPoison           Kind = "poison"
)

type Visibility string

const (
	VisibilityLow    Visibility = "low"
	VisibilityMedium Visibility = "medium"
	VisibilityHigh   Visibility = "high"
)

// DoorCode is the key color required by a locked door.
type DoorCode string

const (
	Blue  DoorCode = "blue"
	Red   DoorCode = "red"
	Green DoorCode = "green"
	White DoorCode = "white"
	Black DoorCode = "black"
)

// Meta carries the name and description shared by every variant.
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (m Meta) ItemName() string        { return m.Name }
func (m Meta) ItemDescription() string { return m.Description }
func (m Meta) sealed()                 {}

// Item is the closed interface over all variants. Concrete types are
// pointers so in-place mutation (ammo, poison flags, container contents)
// is visible through any holding inventory.
type Item interface {
	ItemName() string
	ItemDescription() string
	Kind() Kind
	Label() string
	sealed()
}

// Weapon is implemented by Melee and Ranged.
type Weapon interface {
	Item
	WeaponDamage() int
	WeaponVisibility() Visibility
}

type Melee struct {
	Meta
	Damage     int
	Visibility Visibility
	KOChance   int // knockout is a 1-in-KOChance roll; 0 disables it
	Poisoned   bool
}

func (m *Melee) Kind() Kind                   { return KindMelee }
func (m *Melee) WeaponDamage() int            { return m.Damage }
func (m *Melee) WeaponVisibility() Visibility { return m.Visibility }

func (m *Melee) Label() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (melee D=%d V=%s", m.Name, m.Damage, m.Visibility)
	if m.KOChance > 0 {
		fmt.Fprintf(&b, " KO=1/%d", m.KOChance)
	}
	if m.Poisoned {
		b.WriteString(" poisoned")
	}
	b.WriteString(")")
	return b.String()
}

type Ranged struct {
	Meta
	Damage     int
	Visibility Visibility
	Ammo       int
}

func (r *Ranged) Kind() Kind                   { return KindRanged }
func (r *Ranged) WeaponDamage() int            { return r.Damage }
func (r *Ranged) WeaponVisibility() Visibility { return r.Visibility }

func (r *Ranged) Label() string {
	return fmt.Sprintf("%s (ranged D=%d A=%d V=%s)", r.Name, r.Damage, r.Ammo, r.Visibility)
}

type Key struct {
	Meta
	Color DoorCode
}

func (k *Key) Kind() Kind    { return KindKey }
func (k *Key) Label() string { return k.Name + " (key)" }

type Clue struct {
	Meta
	Text string
}

func (c *Clue) Kind() Kind    { return KindClue }
func (c *Clue) Label() string { return c.Name + " (clue)" }

// HiddenPassageway links a secret closet to its mission rooms. It deliberately
// presents itself as an ordinary display until inspected.
type HiddenPassageway struct {
	Meta
	Rooms []string
}

func (h *HiddenPassageway) Kind() Kind    { return KindHiddenPassageway }
func (h *HiddenPassageway) Label() string { return h.Name + " (display)" }

type Consumable struct {
	Meta
	Poisoned    bool
	Alcohol     bool
	HealthBonus int
	UsesLeft    int
}

func (c *Consumable) Kind() Kind { return KindConsumable }

func (c *Consumable) Label() string {
	var b strings.Builder
	b.WriteString(c.Name + " (consumable")
	if c.Alcohol {
		b.WriteString(" alcohol")
	}
	if c.Poisoned {
		b.WriteString(" poisoned")
	}
	b.WriteString(")")
	return b.String()
}

type Container struct {
	Meta
	Items List
}

func (c *Container) Kind() Kind    { return KindContainer }
func (c *Container) Label() string { return c.Name + " (container)" }

type Display struct{ Meta }

func (d *Display) Kind() Kind    { return KindDisplay }
func (d *Display) Label() string { return d.Name + " (display)" }

type Furniture struct{ Meta }

func (f *Furniture) Kind() Kind    { return KindFurniture }
func (f *Furniture) Label() string { return f.Name + " (furniture)" }

type LargeDisplay struct{ Meta }

func (l *LargeDisplay) Kind() Kind    { return KindLargeDisplay }
func (l *LargeDisplay) Label() string { return l.Name + " (display)" }

type Escape struct{ Meta }

func (e *Escape) Kind() Kind    { return KindEscape }
func (e *Escape) Label() string { return e.Name + " (escape)" }

type Intel struct{ Meta }

func (i *Intel) Kind() Kind    { return KindIntel }
func (i *Intel) Label() string { return i.Name + " (intel)" }

type Poison struct{ Meta }

func (p *Poison) Kind() Kind    { return KindPoison }
func (p *Poison) Label() string { return p.Name + " (poison)" }

// AsWeapon returns the item as a Weapon when it is one.
func AsWeapon(it Item) (Weapon, bool) {
	w, ok := it.(Weapon)
	return w, ok
}

// IsHeavy reports whether the item is too large to carry.
func IsHeavy(it Item) bool {
	switch it.(type) {
	case *Container, *LargeDisplay, *Escape, *Furniture:
		return true
	default:
		return false
	}
}

// List is an ordered item collection with case-insensitive name lookup.
type List []Item

// Find returns the first item whose name matches, case-insensitively.
func (l List) Find(name string) (Item, bool) {
	for _, it := range l {
		if strings.EqualFold(it.ItemName(), name) {
			return it, true
		}
	}
	return nil, false
}

// Remove deletes the first item whose name matches and reports whether an
// item was removed.
func (l *List) Remove(name string) bool {
	for i, it := range *l {
		if strings.EqualFold(it.ItemName(), name) {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the item names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, it := range l {
		names[i] = it.ItemName()
	}
	return names
}
