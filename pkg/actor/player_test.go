package actor

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
)

func testPlayer() *Player {
	pistol := &item.Ranged{
		Meta:       item.Meta{Name: "Pistol", Description: "a good pistol"},
		Damage:     50,
		Visibility: item.VisibilityLow,
		Ammo:       15,
	}
	p := NewPlayer("Ryan", "An awesome programmer", personality.Male, item.List{pistol})
	p.Equip(pistol)
	return p
}

func TestFindConsumableExcludesPoisoned(t *testing.T) {
	p := testPlayer()
	p.AddItem(&item.Consumable{Meta: item.Meta{Name: "Burger"}, HealthBonus: 50, UsesLeft: 1})
	p.AddItem(&item.Consumable{Meta: item.Meta{Name: "Cake"}, HealthBonus: 15, UsesLeft: 4, Poisoned: true})

	c, ok := p.FindConsumable("burger")
	require.True(t, ok)
	assert.Equal(t, "Burger", c.Name)

	_, ok = p.FindConsumable("cake")
	assert.False(t, ok)

	_, ok = p.FindConsumable("pistol")
	assert.False(t, ok)
}

func TestRemoveItemUnequips(t *testing.T) {
	p := testPlayer()

	p.RemoveItem("pistol")
	_, ok := p.Equipped()
	assert.False(t, ok)
	assert.Empty(t, p.Items)
}

func TestClearCloseTargetIf(t *testing.T) {
	p := testPlayer()
	p.CloseTarget = "Alyss"

	p.ClearCloseTargetIf("Viktor")
	assert.Equal(t, "Alyss", p.CloseTarget)

	p.ClearCloseTargetIf("alyss")
	assert.Empty(t, p.CloseTarget)
}

func TestSetCompanion(t *testing.T) {
	out := output.New()
	p := testPlayer()

	p.SetCompanion(out, "Alyss")
	assert.Equal(t, "Alyss", p.Companion)
	assert.Contains(t, out.Drain(), "Alyss has joined you")

	p.SetCompanion(out, "")
	assert.Empty(t, p.Companion)
	assert.Contains(t, out.Drain(), "Your companion has left you")
}

func TestApplyAngryAttack(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := testPlayer()

	damage := p.ApplyAngryAttack(rng)
	assert.GreaterOrEqual(t, damage, 10)
	assert.LessOrEqual(t, damage, 40)
	assert.Zero(t, damage%10)
	assert.Equal(t, 100-damage, p.Health)
}

func TestPlayerJSONRoundTrip(t *testing.T) {
	p := testPlayer()
	p.Disguise = TypeMaid
	p.Companion = "Alyss"
	p.CloseTarget = "Viktor"
	p.AddItem(&item.Key{Meta: item.Meta{Name: "BlueKey", Description: "A BlueKey"}, Color: item.Blue})

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Player
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Disguise, got.Disguise)
	assert.Equal(t, p.Companion, got.Companion)
	assert.Equal(t, p.CloseTarget, got.CloseTarget)
	assert.Equal(t, p.Items, got.Items)

	// The equipped reference resolves to the same inventory item.
	eq, ok := got.Equipped()
	require.True(t, ok)
	assert.Equal(t, "Pistol", eq.ItemName())
	inv, _ := got.FindItem("pistol")
	assert.Same(t, inv, eq)
}

func TestPlayerJSONRejectsDanglingEquipped(t *testing.T) {
	var got Player
	err := json.Unmarshal([]byte(`{"name":"Ryan","health":100,"items":[],"equipped":"Pistol"}`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing from inventory")
}
