package worldgen

import (
	"fmt"
	"math/rand"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/personality"
	"hitman/pkg/room"
)

var maleNames = []string{
	"Viktor", "Sergei", "Marcus", "Dmitri", "Henry", "Oliver", "Felix",
	"Bruno", "Anton", "Yuri", "Carl", "Rupert", "Stefan", "Leon", "Hugo",
}

var femaleNames = []string{
	"Alyss", "Diana", "Elena", "Greta", "Irina", "Maria", "Natasha",
	"Olga", "Sofia", "Vera", "Camille", "Ingrid", "Lena", "Petra", "Rosa",
}

var personDescriptions = map[actor.Type]string{
	actor.TypeBarkeep:       "They are mixing drinks behind the bar",
	actor.TypeChef:          "They are wearing a stained apron and a tall white hat",
	actor.TypeGroundskeeper: "They are tending to the grounds",
	actor.TypeJanitor:       "They are pushing a cart of cleaning supplies",
	actor.TypeMaid:          "They are tidying up the room",
	actor.TypeCivilian:      "A guest of the family",
	actor.TypeGuard:         "A burly guard in a dark suit. There is a pistol on their hip",
	actor.TypeTarget:        "They look important, and nervous",
}

// responsiveness per type: how hard a person is to sway with talk.
var typeResponsiveness = map[actor.Type]float64{
	actor.TypeBarkeep:       0.8,
	actor.TypeChef:          0.8,
	actor.TypeGroundskeeper: 0.8,
	actor.TypeJanitor:       0.8,
	actor.TypeMaid:          0.8,
	actor.TypeCivilian:      0.6,
	actor.TypeGuard:         0.3,
	actor.TypeTarget:        0.2,
}

// RandomLife draws a name and gender for an extra life granted mid-game.
// Unlike generation-time people, these may repeat names already in the world.
func RandomLife(rng *rand.Rand) game.RespawnData {
	if rng.Intn(2) == 0 {
		return game.RespawnData{Name: maleNames[rng.Intn(len(maleNames))], Gender: personality.Male}
	}
	return game.RespawnData{Name: femaleNames[rng.Intn(len(femaleNames))], Gender: personality.Female}
}

// nextName draws an unused name for the gender, numbering repeats once the
// pool runs dry.
func (g *Generator) nextName(gender personality.Gender) string {
	pool := maleNames
	if gender == personality.Female {
		pool = femaleNames
	}
	start := g.rng.Intn(len(pool))
	for i := 0; i < len(pool); i++ {
		name := pool[(start+i)%len(pool)]
		if !g.usedNames[name] {
			g.usedNames[name] = true
			return name
		}
	}
	g.nameSerial++
	return fmt.Sprintf("%s%d", pool[start], g.nameSerial)
}

func (g *Generator) randomGender() personality.Gender {
	if g.rng.Intn(2) == 0 {
		return personality.Male
	}
	return personality.Female
}

func (g *Generator) randomSexuality() personality.Sexuality {
	switch n := g.rng.Intn(10); {
	case n < 7:
		return personality.Straight
	case n < 9:
		return personality.Bisexual
	default:
		return personality.Gay
	}
}

func (g *Generator) randomEthics() personality.Ethics {
	return []personality.Ethics{personality.Lawful, personality.NeutralEthics, personality.Chaotic}[g.rng.Intn(3)]
}

func (g *Generator) randomMorality() personality.Morality {
	return []personality.Morality{personality.Blue, personality.Grey, personality.Red}[g.rng.Intn(3)]
}

func (g *Generator) randomBravery() personality.Bravery {
	return []personality.Bravery{personality.Fearful, personality.NeutralBravery, personality.Brave}[g.rng.Intn(3)]
}

// spawnPerson builds one person of the given type with randomized traits.
// Guards are always brave and start on watch.
func (g *Generator) spawnPerson(typ actor.Type) *actor.Person {
	gender := g.randomGender()
	bravery := g.randomBravery()
	if typ == actor.TypeGuard {
		bravery = personality.Brave
	}
	p := actor.New(
		g.nextName(gender),
		personDescriptions[typ],
		typ,
		gender,
		g.randomSexuality(),
		bravery,
		g.randomEthics(),
		g.randomMorality(),
		typeResponsiveness[typ],
	)
	if typ == actor.TypeGuard {
		p.StandGuard()
	}
	return p
}

// spawnMaidAlyss builds the maid who always greets the player in the spawn
// room.
func (g *Generator) spawnMaidAlyss() *actor.Person {
	g.usedNames["Alyss"] = true
	return actor.New(
		"Alyss",
		personDescriptions[actor.TypeMaid],
		actor.TypeMaid,
		personality.Female,
		g.randomSexuality(),
		g.randomBravery(),
		g.randomEthics(),
		g.randomMorality(),
		typeResponsiveness[actor.TypeMaid],
	)
}

// spawnPeople populates a room by type. The spawn room always holds a single
// maid so a new player has someone safe to talk to.
func (g *Generator) spawnPeople(t spawnType) []*actor.Person {
	var people []*actor.Person
	add := func(typ actor.Type) { people = append(people, g.spawnPerson(typ)) }
	chance := func(n int) bool { return g.rng.Intn(n) == 0 }

	switch t.typ {
	case room.TypeSpawn:
		people = append(people, g.spawnMaidAlyss())
	case room.TypePatio:
		if chance(2) {
			add(actor.TypeGroundskeeper)
		}
		for i := g.rng.Intn(3); i > 0; i-- {
			add(actor.TypeCivilian)
		}
	case room.TypeGarden:
		add(actor.TypeGroundskeeper)
		if chance(2) {
			add(actor.TypeCivilian)
		}
	case room.TypeGarage:
		if chance(2) {
			add(actor.TypeJanitor)
		}
	case room.TypeStorage:
		add(actor.TypeGuard)
	case room.TypeBathroom:
		if chance(4) {
			add(actor.TypeCivilian)
		}
	case room.TypeHallway:
		if chance(2) {
			if chance(2) {
				add(actor.TypeMaid)
			} else {
				add(actor.TypeJanitor)
			}
		}
	case room.TypeCommonRoom:
		if chance(2) {
			add(actor.TypeBarkeep)
		}
		if chance(2) {
			add(actor.TypeChef)
		}
		for i := 1 + g.rng.Intn(3); i > 0; i-- {
			add(actor.TypeCivilian)
		}
	case room.TypeEntranceWay:
		add(actor.TypeGuard)
	case room.TypePrivateRoom:
		if chance(4) {
			add(actor.TypeTarget)
		}
		if chance(2) {
			add(actor.TypeCivilian)
		}
	case room.TypeMissionRoom:
		add(actor.TypeTarget)
		for i := 1 + g.rng.Intn(2); i > 0; i-- {
			add(actor.TypeGuard)
		}
	}
	return people
}
