package ai

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

func person(name string, typ actor.Type, bravery personality.Bravery) *actor.Person {
	return actor.New(name, "someone", typ, personality.Male, personality.Straight,
		bravery, personality.NeutralEthics, personality.Grey, 0.5)
}

func testEnv(people ...*actor.Person) *game.Environment {
	player := actor.NewPlayer("Ryan", "An assassin", personality.Male, item.List{})
	current := room.New("LivingRoom", "The living room", room.TypeCommonRoom, people, item.List{})
	m := &room.Map{
		CurrentRoom:   "LivingRoom",
		AdjacentRooms: []room.AdjacentRoom{{Name: "Library", Lock: room.LockState{Kind: room.Unlocked}}},
	}
	next := room.New("Library", "A library", room.TypeCommonRoom, nil, item.List{})
	nextMap := &room.Map{
		CurrentRoom:   "Library",
		AdjacentRooms: []room.AdjacentRoom{{Name: "LivingRoom", Lock: room.LockState{Kind: room.Unlocked}}},
	}

	rooms := world.NewRooms()
	rooms.Put(current, m)
	rooms.Put(next, nextMap)

	return &game.Environment{
		Player: player,
		Room:   current,
		Map:    m,
		Status: game.StatusContinue,
		Rooms:  rooms,
		Out:    output.New(),
		Rng:    rand.New(rand.NewSource(1)),
	}
}

func TestAlertEscalatesByDisposition(t *testing.T) {
	guard := person("Viktor", actor.TypeGuard, personality.Brave)
	guard.StandGuard()
	coward := person("Felix", actor.TypeCivilian, personality.Fearful)
	bystander := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	env := testEnv(guard, coward, bystander)
	env.Player.Disguise = actor.TypeMaid

	Run(env, Alert(actor.Target{Kind: actor.TargetPlayer}))

	assert.Equal(t, actor.Hostile, guard.Awareness.Kind)
	assert.Equal(t, actor.TargetPlayer, guard.Awareness.Target.Kind)
	assert.Equal(t, actor.Afraid, coward.Awareness.Kind)
	assert.Equal(t, 6, coward.Personality.Fear)
	assert.Equal(t, actor.Aware, bystander.Awareness.Kind)

	// Detection strips the disguise, and the hostile guard swings.
	assert.Equal(t, actor.Type(""), env.Player.Disguise)
	assert.Equal(t, 90, env.Player.Health)

	out := strings.Join(env.Out.Drain(), "\n")
	assert.Contains(t, out, "Viktor is Hostile to You")
	assert.Contains(t, out, "guard Viktor attacked you for 10 damage")
}

func TestAlertWakesSleepers(t *testing.T) {
	sleeper := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	sleeper.State = actor.StateAsleep
	env := testEnv(sleeper)

	Run(env, Alert(actor.Target{Kind: actor.TargetPlayer}))
	assert.Equal(t, actor.StateNormal, sleeper.State)
	assert.Equal(t, actor.Aware, sleeper.Awareness.Kind)
}

func TestAlertAllReachesAdjacentRooms(t *testing.T) {
	env := testEnv()
	neighbor := person("Anton", actor.TypeCivilian, personality.NeutralBravery)
	lib, _, err := env.Rooms.Get("Library")
	require.NoError(t, err)
	lib.AddPerson(neighbor)

	Run(env, AlertAll(actor.Target{Kind: actor.TargetPlayer}))

	assert.Equal(t, actor.Aware, neighbor.Awareness.Kind)
	out := strings.Join(env.Out.Drain(), "\n")
	assert.Contains(t, out, "-Library:")
	assert.Contains(t, out, "Anton is Aware of you")
}

func TestRangedWeaponBurnsAmmo(t *testing.T) {
	shooter := person("Viktor", actor.TypeGuard, personality.Brave)
	shooter.Awareness = actor.Awareness{Kind: actor.Hostile, Target: actor.Target{Kind: actor.TargetPlayer}}
	shooter.HoldingWeapon = true
	pistol := &item.Ranged{Meta: item.Meta{Name: "P226", Description: "A special forces pistol"}, Damage: 30, Ammo: 2}
	shooter.AddItem(pistol)
	env := testEnv(shooter)

	Run(env, Move())
	assert.Equal(t, 70, env.Player.Health)
	assert.Equal(t, 1, pistol.Ammo)

	// The last round discards the weapon.
	Run(env, Move())
	assert.Equal(t, 40, env.Player.Health)
	_, stillHeld := shooter.FindItem("P226")
	assert.False(t, stillHeld)
	assert.False(t, shooter.HoldingWeapon)

	// Unarmed now, back to fists.
	Run(env, Move())
	assert.Equal(t, 30, env.Player.Health)
}

func TestAttackOnPersonCompletesObjective(t *testing.T) {
	attacker := person("Viktor", actor.TypeGuard, personality.Brave)
	attacker.Awareness = actor.Awareness{Kind: actor.Hostile, Target: actor.Target{Kind: actor.TargetPerson, Name: "Sergei"}}
	victim := person("Sergei", actor.TypeTarget, personality.NeutralBravery)
	victim.Health = 10
	env := testEnv(attacker, victim)
	env.Objectives = []game.Objective{{Kind: game.ObjectiveKill, Name: "Sergei", TargetState: game.TargetAlive}}

	// Knockout rolls can spare the victim a few rounds, never forever.
	for i := 0; i < 15 && victim.State != actor.StateDead; i++ {
		attack(env, attacker, attacker.Awareness.Target)
	}

	require.Equal(t, actor.StateDead, victim.State)
	assert.True(t, env.Objectives[0].Completed)
	assert.Equal(t, game.TargetEliminated, env.Objectives[0].TargetState)
	assert.Equal(t, actor.Aware, attacker.Awareness.Kind)
}

func TestWoundedPersonEatsHeldFood(t *testing.T) {
	eater := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	eater.Health = 40
	eater.HoldingFood = true
	eater.AddItem(&item.Consumable{Meta: item.Meta{Name: "Cake", Description: "A lemon cake"}, HealthBonus: 15, UsesLeft: 1, Poisoned: true})
	env := testEnv(eater)

	Run(env, Move())

	assert.Equal(t, 55, eater.Health)
	assert.True(t, eater.Poisoned)
	assert.False(t, eater.HoldingFood)
	_, held := eater.FindItem("Cake")
	assert.False(t, held)

	out := strings.Join(env.Out.Drain(), "\n")
	assert.Contains(t, out, "Henry consumed some of Cake")
	assert.Contains(t, out, "Cake was used up")
}

func TestPeoplePickUpRoomFood(t *testing.T) {
	p := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	env := testEnv(p)
	env.Room.AddItem(&item.Consumable{Meta: item.Meta{Name: "Apple", Description: "A juicy apple"}, HealthBonus: 10, UsesLeft: 4})

	Run(env, Move())

	assert.True(t, p.HoldingFood)
	_, held := p.FindItem("Apple")
	assert.True(t, held)
	_, inRoom := env.Room.FindItem("Apple")
	assert.False(t, inRoom)
}

func TestCommandedGotoMovesPerson(t *testing.T) {
	p := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	p.Commanded = true
	p.Action = actor.Action{Kind: actor.ActionGoto, Room: "Library"}
	env := testEnv(p)
	env.Player.Companion = "Henry"

	Run(env, Move())

	_, stillHere := env.Room.FindPerson("Henry")
	assert.False(t, stillHere)
	lib, _, err := env.Rooms.Get("Library")
	require.NoError(t, err)
	_, arrived := lib.FindPerson("Henry")
	assert.True(t, arrived)
	assert.False(t, p.Commanded)
	assert.Empty(t, env.Player.Companion)

	out := strings.Join(env.Out.Drain(), "\n")
	assert.Contains(t, out, "Henry moved to Library")
	assert.Contains(t, out, "Your companion has left you")
}

func TestUnconsciousPersonEventuallyWakes(t *testing.T) {
	p := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	p.State = actor.StateUnconscious
	env := testEnv(p)
	env.Player.Companion = "Henry"

	Run(env, Move())
	assert.Empty(t, env.Player.Companion)
	assert.Contains(t, strings.Join(env.Out.Drain(), "\n"),
		"Henry is no longer your companion because they were incapacitated")

	woke := false
	for i := 0; i < 500; i++ {
		Run(env, Move())
		if p.State == actor.StateNormal {
			woke = true
			break
		}
	}
	assert.True(t, woke, "person never regained consciousness")
}

func TestPoisonTicksDuringTurns(t *testing.T) {
	p := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	p.Poisoned = true
	p.Health = 10
	env := testEnv(p)
	env.Objectives = []game.Objective{{Kind: game.ObjectiveKill, Name: "Henry", TargetState: game.TargetAlive}}

	Run(env, Move())
	assert.Equal(t, actor.StateDead, p.State)
	assert.Equal(t, 0, p.Health)
	assert.True(t, env.Objectives[0].Completed)
	assert.Equal(t, 1, env.Accolades.Kills)

	// Later turns pass over the corpse without crediting it again.
	Run(env, Move())
	Run(env, Move())
	assert.Equal(t, 1, env.Accolades.Kills)
}

func TestDeadPersonStaysUncredited(t *testing.T) {
	corpse := person("Henry", actor.TypeCivilian, personality.NeutralBravery)
	corpse.State = actor.StateDead
	corpse.Health = 0
	env := testEnv(corpse)

	for i := 0; i < 3; i++ {
		Run(env, Move())
	}
	assert.Equal(t, 0, env.Accolades.Kills)
}
