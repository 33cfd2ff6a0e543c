package item

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFindIsCaseInsensitive(t *testing.T) {
	l := List{
		&Key{Meta: Meta{Name: "BlueKey", Description: "A BlueKey"}, Color: Blue},
		&Poison{Meta{Name: "Venom", Description: "An unknown concoction"}},
	}

	it, ok := l.Find("bluekey")
	require.True(t, ok)
	assert.Equal(t, "BlueKey", it.ItemName())

	it, ok = l.Find("VENOM")
	require.True(t, ok)
	assert.Equal(t, KindPoison, it.Kind())

	_, ok = l.Find("knife")
	assert.False(t, ok)
}

func TestListRemove(t *testing.T) {
	l := List{
		&Intel{Meta{Name: "DrugManifest", Description: "A listing"}},
		&Intel{Meta{Name: "PersonManifest", Description: "A record"}},
	}

	assert.True(t, l.Remove("drugmanifest"))
	assert.Len(t, l, 1)
	assert.False(t, l.Remove("drugmanifest"))
	assert.Equal(t, []string{"PersonManifest"}, l.Names())
}

func TestIsHeavy(t *testing.T) {
	tests := []struct {
		name  string
		it    Item
		heavy bool
	}{
		{"container", &Container{Meta: Meta{Name: "Chest"}}, true},
		{"furniture", &Furniture{Meta{Name: "Couch"}}, true},
		{"large display", &LargeDisplay{Meta{Name: "Pool"}}, true},
		{"escape", &Escape{Meta{Name: "Tesla"}}, true},
		{"melee", &Melee{Meta: Meta{Name: "Knife"}}, false},
		{"key", &Key{Meta: Meta{Name: "RedKey"}}, false},
		{"consumable", &Consumable{Meta: Meta{Name: "Pizza"}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.heavy, IsHeavy(tc.it))
		})
	}
}

func TestPassagewayPresentsAsDisplay(t *testing.T) {
	h := &HiddenPassageway{Meta: Meta{Name: "Bookcase"}, Rooms: []string{"TechLab"}}
	assert.Equal(t, "Bookcase (display)", h.Label())
}

func TestJSONRoundTrip(t *testing.T) {
	ko := 8
	l := List{
		&Melee{Meta: Meta{Name: "Shovel", Description: "A typical garden shovel"}, Damage: 50, Visibility: VisibilityMedium, KOChance: ko, Poisoned: true},
		&Ranged{Meta: Meta{Name: "P226", Description: "A special forces pistol"}, Damage: 30, Visibility: VisibilityMedium, Ammo: 15},
		&Key{Meta: Meta{Name: "BlackKey", Description: "A BlackKey"}, Color: Black},
		&Clue{Meta: Meta{Name: "Memo", Description: "An internal communication"}, Text: "Kill Viktor"},
		&HiddenPassageway{Meta: Meta{Name: "Vent", Description: "An airconditioning vent"}, Rooms: []string{"TechLab", "Cellar"}},
		&Consumable{Meta: Meta{Name: "Wine", Description: "A bottle of red wine"}, Alcohol: true, HealthBonus: 10, UsesLeft: 6},
		&Container{
			Meta:  Meta{Name: "Chest", Description: "A storage chest"},
			Items: List{&Poison{Meta{Name: "Venom", Description: "An unknown concoction"}}},
		},
		&Escape{Meta{Name: "Horse", Description: "A large thoroughbred"}},
	}

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got List
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, len(l))

	melee, ok := got[0].(*Melee)
	require.True(t, ok)
	assert.Equal(t, 50, melee.Damage)
	assert.Equal(t, 8, melee.KOChance)
	assert.True(t, melee.Poisoned)

	ranged, ok := got[1].(*Ranged)
	require.True(t, ok)
	assert.Equal(t, 15, ranged.Ammo)

	assert.Equal(t, l, got)
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"gadget","name":"X","description":"Y"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item kind")
}

func TestRandomContainerHasContents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		c := RandomContainer(rng)
		assert.Len(t, c.Items, 2)
		for _, it := range c.Items {
			switch it.Kind() {
			case KindMelee, KindRanged, KindConsumable, KindPoison:
			default:
				t.Fatalf("unexpected container content kind %q", it.Kind())
			}
		}
	}
}

func TestWeaponInterface(t *testing.T) {
	var it Item = &Ranged{Meta: Meta{Name: "Shotgun"}, Damage: 100, Visibility: VisibilityHigh, Ammo: 2}
	w, ok := AsWeapon(it)
	require.True(t, ok)
	assert.Equal(t, 100, w.WeaponDamage())
	assert.Equal(t, VisibilityHigh, w.WeaponVisibility())

	_, ok = AsWeapon(&Poison{Meta{Name: "Venom"}})
	assert.False(t, ok)
}
