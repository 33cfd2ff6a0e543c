package worldgen

import (
	"strings"

	"hitman/pkg/item"
	"hitman/pkg/room"
)

// itemClass names an item category during generation, before a concrete item
// is drawn from the catalog.
type itemClass string

const (
	classMelee        itemClass = "melee"
	classRanged       itemClass = "ranged"
	classKey          itemClass = "key"
	classConsumable   itemClass = "consumable"
	classContainer    itemClass = "container"
	classDisplay      itemClass = "display"
	classLargeDisplay itemClass = "large_display"
	classEscape       itemClass = "escape"
	classFurniture    itemClass = "furniture"
	classIntel        itemClass = "intel"
	classPoison       itemClass = "poison"
)

// defaultItems always spawn in rooms of the given type, on top of the random
// draws.
func defaultItems(t room.Type) []itemClass {
	switch t {
	case room.TypeSpawn:
		return []itemClass{classMelee, classEscape, classConsumable}
	case room.TypePatio, room.TypeGarden:
		return []itemClass{classLargeDisplay}
	case room.TypeGarage:
		return []itemClass{classEscape}
	case room.TypeStorage:
		return []itemClass{classMelee, classConsumable}
	case room.TypeCommonRoom:
		return []itemClass{classFurniture, classConsumable, classConsumable}
	case room.TypePrivateRoom:
		return []itemClass{classConsumable}
	default:
		return nil
	}
}

type classWeight struct {
	class  itemClass
	weight int
}

// itemClassWeights is the random-draw table per room type. Keys only appear
// for types that map to a key color.
func itemClassWeights(t room.Type) []classWeight {
	switch t {
	case room.TypeSpawn:
		return []classWeight{{classMelee, 1}, {classRanged, 2}, {classKey, 5}, {classConsumable, 2}, {classContainer, 1}, {classDisplay, 1}, {classPoison, 1}}
	case room.TypePatio:
		return []classWeight{{classMelee, 1}, {classKey, 1}, {classConsumable, 2}, {classContainer, 1}, {classDisplay, 1}, {classLargeDisplay, 2}}
	case room.TypeGarden:
		return []classWeight{{classMelee, 1}, {classKey, 1}, {classContainer, 1}, {classDisplay, 1}, {classLargeDisplay, 2}, {classPoison, 2}}
	case room.TypeGarage:
		return []classWeight{{classRanged, 1}, {classKey, 1}, {classEscape, 2}, {classContainer, 1}, {classFurniture, 1}, {classDisplay, 1}, {classLargeDisplay, 1}}
	case room.TypeStorage:
		return []classWeight{{classKey, 1}, {classConsumable, 1}, {classContainer, 1}, {classFurniture, 1}, {classDisplay, 1}}
	case room.TypeBathroom:
		return []classWeight{{classMelee, 1}, {classContainer, 1}, {classFurniture, 1}, {classDisplay, 2}}
	case room.TypeStairs:
		return []classWeight{{classDisplay, 3}}
	case room.TypeHallway:
		return []classWeight{{classRanged, 1}, {classConsumable, 1}, {classContainer, 1}, {classDisplay, 1}}
	case room.TypeCommonRoom:
		return []classWeight{{classMelee, 1}, {classKey, 1}, {classConsumable, 2}, {classContainer, 1}, {classFurniture, 2}, {classDisplay, 1}}
	case room.TypeEntranceWay:
		return []classWeight{{classKey, 1}, {classFurniture, 1}, {classDisplay, 1}}
	case room.TypePrivateRoom:
		return []classWeight{{classMelee, 1}, {classRanged, 1}, {classKey, 2}, {classFurniture, 3}, {classDisplay, 1}, {classIntel, 1}}
	case room.TypeCloset:
		return []classWeight{{classRanged, 1}, {classConsumable, 1}, {classContainer, 1}, {classDisplay, 1}}
	default: // mission room
		return []classWeight{{classMelee, 1}, {classRanged, 2}, {classConsumable, 1}, {classContainer, 1}, {classFurniture, 1}, {classDisplay, 1}, {classIntel, 3}, {classPoison, 1}}
	}
}

func (g *Generator) randomClass(t room.Type) itemClass {
	var pool []itemClass
	for _, cw := range itemClassWeights(t) {
		for i := 0; i < cw.weight; i++ {
			pool = append(pool, cw.class)
		}
	}
	return pool[g.rng.Intn(len(pool))]
}

// itemCount rolls how many random items a room gets on top of its defaults.
func (g *Generator) itemCount(t room.Type) int {
	n := 0
	switch t {
	case room.TypeSpawn:
		n = 4 + g.rng.Intn(2)
	case room.TypePatio:
		n = 4 + g.rng.Intn(3)
	case room.TypeGarden:
		n = 2 + g.rng.Intn(4)
	case room.TypeGarage:
		n = 1 + g.rng.Intn(2)
	case room.TypeStorage:
		n = 5 + g.rng.Intn(3)
	case room.TypeBathroom:
		n = g.rng.Intn(2)
	case room.TypeHallway:
		n = 2 + g.rng.Intn(2)
	case room.TypeCommonRoom, room.TypeEntranceWay, room.TypeCloset:
		n = 2 + g.rng.Intn(3)
	case room.TypePrivateRoom:
		n = 2 + g.rng.Intn(2)
	case room.TypeMissionRoom:
		n = 3 + g.rng.Intn(2)
	}
	return 2 + n
}

// keyColorFor picks the key color a room of this type hands out. Types
// without their own color fall back to white.
func keyColorFor(t room.Type) item.DoorCode {
	switch t {
	case room.TypeSpawn, room.TypeStorage:
		return item.Blue
	case room.TypePatio, room.TypeGarden, room.TypeGarage:
		return item.Red
	case room.TypeCommonRoom:
		return item.Green
	case room.TypePrivateRoom:
		return item.Black
	default:
		return item.White
	}
}

func (g *Generator) classToItem(t room.Type, class itemClass) item.Item {
	switch class {
	case classMelee:
		return item.RandomMelee(g.rng)
	case classRanged:
		return item.RandomRanged(g.rng)
	case classKey:
		return item.KeyFor(keyColorFor(t))
	case classConsumable:
		return item.RandomConsumable(g.rng)
	case classContainer:
		return item.RandomContainer(g.rng)
	case classDisplay:
		return item.RandomDisplay(g.rng)
	case classLargeDisplay:
		return item.RandomLargeDisplay(g.rng)
	case classEscape:
		return item.RandomEscape(g.rng)
	case classFurniture:
		return item.RandomFurniture(g.rng)
	case classIntel:
		return item.RandomIntel(g.rng)
	default:
		return item.RandomPoison(g.rng)
	}
}

// prioritizeFood converts roughly half of a food room's item classes to
// consumables. Intel is never converted.
func (g *Generator) prioritizeFood(classes []itemClass) []itemClass {
	for i, c := range classes {
		if c != classIntel && g.rng.Intn(2) == 0 {
			classes[i] = classConsumable
		}
	}
	return classes
}

// spawnItems builds a room's item list: random draws plus defaults, food
// prioritization for kitchens and pantries, a hidden passageway for secret
// closets, then de-duplication by item name.
func (g *Generator) spawnItems(t spawnType, name string) item.List {
	count := g.itemCount(t.typ)
	classes := make([]itemClass, 0, count)
	for i := 0; i < count; i++ {
		classes = append(classes, g.randomClass(t.typ))
	}
	classes = append(classes, defaultItems(t.typ)...)
	if foodRooms[name] {
		classes = g.prioritizeFood(classes)
	}

	items := make(item.List, 0, len(classes)+1)
	for _, c := range classes {
		items = append(items, g.classToItem(t.typ, c))
	}
	if t.typ == room.TypeCloset && t.hasSecret {
		items = append(items, item.RandomPassageway(g.rng))
	}
	return distinctByName(items)
}

func distinctByName(items item.List) item.List {
	seen := make(map[string]bool, len(items))
	out := make(item.List, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.ItemName())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
