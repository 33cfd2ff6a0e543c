package item

import (
	"encoding/json"
	"fmt"
)

// envelope is the flat wire shape shared by every variant. The kind field
// selects which of the optional fields are meaningful.
type envelope struct {
	Kind        Kind       `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Damage      int        `json:"damage,omitempty"`
	Visibility  Visibility `json:"visibility,omitempty"`
	KOChance    int        `json:"ko_chance,omitempty"`
	Poisoned    bool       `json:"poisoned,omitempty"`
	Ammo        int        `json:"ammo,omitempty"`
	Color       DoorCode   `json:"color,omitempty"`
	Text        string     `json:"text,omitempty"`
	Rooms       []string   `json:"rooms,omitempty"`
	Alcohol     bool       `json:"alcohol,omitempty"`
	HealthBonus int        `json:"health_bonus,omitempty"`
	UsesLeft    int        `json:"uses_left,omitempty"`
	Items       List       `json:"items,omitempty"`
}

func toEnvelope(it Item) (envelope, error) {
	env := envelope{
		Kind:        it.Kind(),
		Name:        it.ItemName(),
		Description: it.ItemDescription(),
	}
	switch v := it.(type) {
	case *Melee:
		env.Damage = v.Damage
		env.Visibility = v.Visibility
		env.KOChance = v.KOChance
		env.Poisoned = v.Poisoned
	case *Ranged:
		env.Damage = v.Damage
		env.Visibility = v.Visibility
		env.Ammo = v.Ammo
	case *Key:
		env.Color = v.Color
	case *Clue:
		env.Text = v.Text
	case *HiddenPassageway:
		env.Rooms = v.Rooms
	case *Consumable:
		env.Poisoned = v.Poisoned
		env.Alcohol = v.Alcohol
		env.HealthBonus = v.HealthBonus
		env.UsesLeft = v.UsesLeft
	case *Container:
		env.Items = v.Items
	case *Display, *Furniture, *LargeDisplay, *Escape, *Intel, *Poison:
	default:
		return envelope{}, fmt.Errorf("unknown item type %T", it)
	}
	return env, nil
}

func fromEnvelope(env envelope) (Item, error) {
	meta := Meta{Name: env.Name, Description: env.Description}
	switch env.Kind {
	case KindMelee:
		return &Melee{Meta: meta, Damage: env.Damage, Visibility: env.Visibility, KOChance: env.KOChance, Poisoned: env.Poisoned}, nil
	case KindRanged:
		return &Ranged{Meta: meta, Damage: env.Damage, Visibility: env.Visibility, Ammo: env.Ammo}, nil
	case KindKey:
		return &Key{Meta: meta, Color: env.Color}, nil
	case KindClue:
		return &Clue{Meta: meta, Text: env.Text}, nil
	case KindHiddenPassageway:
		return &HiddenPassageway{Meta: meta, Rooms: env.Rooms}, nil
	case KindConsumable:
		return &Consumable{Meta: meta, Poisoned: env.Poisoned, Alcohol: env.Alcohol, HealthBonus: env.HealthBonus, UsesLeft: env.UsesLeft}, nil
	case KindContainer:
		return &Container{Meta: meta, Items: env.Items}, nil
	case KindDisplay:
		return &Display{Meta: meta}, nil
	case KindFurniture:
		return &Furniture{Meta: meta}, nil
	case KindLargeDisplay:
		return &LargeDisplay{Meta: meta}, nil
	case KindEscape:
		return &Escape{Meta: meta}, nil
	case KindIntel:
		return &Intel{Meta: meta}, nil
	case KindPoison:
		return &Poison{Meta: meta}, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", env.Kind)
	}
}

// Marshal encodes a single item in its kind-envelope shape.
func Marshal(it Item) ([]byte, error) {
	env, err := toEnvelope(it)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Unmarshal decodes a single kind-envelope item.
func Unmarshal(data []byte) (Item, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return fromEnvelope(env)
}

func (l List) MarshalJSON() ([]byte, error) {
	envs := make([]envelope, len(l))
	for i, it := range l {
		env, err := toEnvelope(it)
		if err != nil {
			return nil, err
		}
		envs[i] = env
	}
	return json.Marshal(envs)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return fmt.Errorf("failed to decode item list: %w", err)
	}
	items := make(List, len(envs))
	for i, env := range envs {
		it, err := fromEnvelope(env)
		if err != nil {
			return err
		}
		items[i] = it
	}
	*l = items
	return nil
}
