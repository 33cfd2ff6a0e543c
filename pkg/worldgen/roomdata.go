package worldgen

import (
	"hitman/pkg/item"
	"hitman/pkg/room"
)

// spawnType is a room type plus the secret flag carried by closets during
// generation.
type spawnType struct {
	typ       room.Type
	hasSecret bool
}

type namedRoom struct{ name, desc string }

var roomOptions = map[room.Type][]namedRoom{
	room.TypeSpawn: {
		{"Spawn", "The Spawn Room"},
	},
	room.TypePatio: {
		{"NorthPatio", "The North Patio"},
		{"SouthPatio", "The South Patio"},
		{"EastPatio", "The East Patio"},
		{"WestPatio", "The West Patio"},
		{"NortheastPatio", "The Northeast Patio"},
		{"SoutheastPatio", "The Southeast Patio"},
		{"SouthwestPatio", "The Southwest Patio"},
		{"NorthwestPatio", "The Northwest Patio"},
		{"DiningPatio", "The Dining Patio"},
	},
	room.TypeGarage: {
		{"NorthGarage", "The North Garage"},
		{"SouthGarage", "The South Garage"},
		{"EastGarage", "The East Garage"},
		{"WestGarage", "The West Garage"},
		{"BlueGarage", "A Blue Garage"},
		{"GreenGarage", "A Green Garage"},
		{"HorseStable", "Fancy living quarters for horses"},
	},
	room.TypeGarden: {
		{"NorthGarden", "The North Garden"},
		{"SouthGarden", "The South Garden"},
		{"EastGarden", "The East Garden"},
		{"WestGarden", "The West Garden"},
		{"FlowerGarden", "A garden full of brilliantly colored flowers"},
		{"HerGarden", "A garden full of rose bushes in full bloom"},
		{"GreenHouse", "A large glass structure. There are many tables covered with plants."},
	},
	room.TypeStorage: {
		{"Workshop", "A workshop full of tools"},
		{"Workshed", "A shed for doing carpentry work"},
	},
	room.TypeBathroom: {
		{"LargeBathroom", "A Large Bathroom"},
		{"SonsBathroom", "The Sons Bathroom"},
		{"DaughterBathroom", "The Daughters Bathroom"},
		{"CenterBathroom", "The Central Bathroom"},
		{"UpperBathroom", "The Upper Bathroom"},
		{"NorthBathroom", "The North Bathroom"},
		{"SouthBathroom", "The South Bathroom"},
		{"EastBathroom", "The East Bathroom"},
		{"WestBathroom", "The West Bathroom"},
	},
	room.TypeStairs: {
		{"MainStairs", "The main staircase"},
		{"CentralStairs", "The central staircase"},
		{"ServiceStairs", "The service staircase"},
	},
	room.TypeHallway: {
		{"DiningHallway", "The dining hallway"},
		{"FamilyHallway", "The family hallway"},
		{"ServiceHallway", "The service hallway"},
		{"NorthHallway", "The North Hallway"},
		{"SouthHallway", "The South Hallway"},
		{"EastHallway", "The East Hallway"},
		{"WestHallway", "The West Hallway"},
	},
	room.TypeCommonRoom: {
		{"LivingRoom", "The living room"},
		{"WhiteParlor", "A parlor. The walls are covered in a white decorative wallpaper"},
		{"GreenParlor", "A parlor. The walls are covered in a green decorative wallpaper"},
		{"Library", "A large library full of books"},
		{"DiningRoom", "A dining room"},
		{"DiningHall", "A large room for eating. The ceiling is very tall and decorated with paintings."},
		{"GreatHall", "A large hall"},
		{"GameRoom", "A hangout spot for playing games."},
		{"Cinema", "A room for watching movies. The back wall is lined with comfy chairs."},
		{"MusicRoom", "A room full of musical instruments. There is a small concert space in the center"},
		{"LargeKitchen", "A large kitchen with stations for several cooks"},
		{"SmallKitchen", "A quaint kitchen"},
	},
	room.TypeEntranceWay: {
		{"NorthFoyer", "The north entrance to the house"},
		{"SouthFoyer", "The south entrance to the house"},
		{"EastFoyer", "The east entrance to the house"},
		{"WestFoyer", "The west entrance to the house"},
		{"GrandFoyer", "A large entrance to the house. The walls are lined with regal paintings of the family's ancestors."},
	},
	room.TypePrivateRoom: {
		{"ParentsRoom", "The parent's room"},
		{"SonsRoom", "The son's room"},
		{"DaughtersRoom", "The daughter's room"},
		{"Tower", "A secluded tower"},
		{"FathersStudy", "The father's study"},
		{"Observatory", "Windows all around give a great view of the forest and mountains nearby"},
		{"WineCellar", "A dark room underground for aging wine"},
		{"GuestBedroom", "A simple bedroom for anyone staying at the house"},
		{"GrandGuestBedroom", "A large bedroom for guests. There is a large bearskin rug in the center."},
	},
	room.TypeCloset: {
		{"ParentsCloset", "The parent's closet"},
		{"SonsCloset", "The son's closet"},
		{"DaughtersCloset", "The daughter's closet"},
		{"ServiceCloset", "A closet for the servants"},
		{"SmallCloset", "A small closet for keeping odds and ends"},
		{"Pantry", "A small room for storing food"},
	},
	room.TypeMissionRoom: {
		{"TechLab", "A large room full of high tech machinery, gadgets, and computers"},
		{"Cellar", "A large cellar. Smuggled goods and people are stored here."},
		{"OperationsRoom", "The fathers room for planning illegal operations"},
		{"ControlRoom", "A room for controlling the house's security systems"},
	},
}

// typeWeights is the pick table for rooms beyond the guaranteed base set.
// Each type appears in proportion to its weight.
var typeWeights = buildTypeWeights([]struct {
	t spawnType
	w int
}{
	{spawnType{typ: room.TypePatio}, 2},
	{spawnType{typ: room.TypeGarden}, 3},
	{spawnType{typ: room.TypeGarage}, 2},
	{spawnType{typ: room.TypeStorage}, 1},
	{spawnType{typ: room.TypeBathroom}, 2},
	{spawnType{typ: room.TypeStairs}, 2},
	{spawnType{typ: room.TypeHallway}, 3},
	{spawnType{typ: room.TypeCommonRoom}, 5},
	{spawnType{typ: room.TypeEntranceWay}, 2},
	{spawnType{typ: room.TypePrivateRoom}, 2},
	{spawnType{typ: room.TypeCloset}, 2},
	{spawnType{typ: room.TypeCloset, hasSecret: true}, 1},
	{spawnType{typ: room.TypeMissionRoom}, 1},
})

func buildTypeWeights(weighted []struct {
	t spawnType
	w int
}) []spawnType {
	var out []spawnType
	for _, e := range weighted {
		for i := 0; i < e.w; i++ {
			out = append(out, e.t)
		}
	}
	return out
}

// connectionLimit rolls the maximum door count for a room.
func (g *Generator) connectionLimit(t spawnType) int {
	switch t.typ {
	case room.TypeSpawn:
		return 2 + g.rng.Intn(2)
	case room.TypePatio, room.TypeGarden, room.TypeGarage, room.TypeStorage:
		return 3 + g.rng.Intn(3)
	case room.TypeBathroom:
		return 2 + g.rng.Intn(2)
	case room.TypeStairs:
		return 4 + g.rng.Intn(3)
	case room.TypeHallway:
		return 3 + g.rng.Intn(4)
	case room.TypeCommonRoom:
		return 2 + g.rng.Intn(2)
	case room.TypeEntranceWay:
		return 4
	case room.TypePrivateRoom:
		return 2
	case room.TypeCloset:
		return 1
	default: // mission room, plus a secret entrance added later
		return 2 + g.rng.Intn(2)
	}
}

const (
	bathroomLockChance   = 0.25
	stairsLockChance     = 0.10
	commonRoomLockChance = 0.10
	closetLockChance     = 0.10
)

// lockFor rolls the lock on a door leading INTO a room of the given type.
func (g *Generator) lockFor(t spawnType) room.LockState {
	roll := func(chance float64, choices ...item.DoorCode) room.LockState {
		if g.rng.Float64() < chance {
			return room.LockedWith(choices[g.rng.Intn(len(choices))])
		}
		return room.LockState{Kind: room.Unlocked}
	}

	switch t.typ {
	case room.TypeSpawn, room.TypePatio, room.TypeGarden:
		return room.LockState{Kind: room.Unlocked}
	case room.TypeGarage, room.TypeStorage:
		return room.LockedWith(item.Blue)
	case room.TypeBathroom:
		return roll(bathroomLockChance, item.White, item.Green)
	case room.TypeStairs:
		return roll(stairsLockChance, item.White, item.Green, item.Blue)
	case room.TypeCommonRoom:
		return roll(commonRoomLockChance, item.White, item.Green, item.Blue)
	case room.TypeEntranceWay, room.TypeHallway:
		return room.LockedWith(item.Red)
	case room.TypePrivateRoom:
		return room.LockedWith(item.Green)
	case room.TypeCloset:
		return roll(closetLockChance, item.White, item.Green, item.Blue, item.Red)
	default:
		return room.LockedWith(item.Black)
	}
}

// foodRooms get roughly half their spawned items converted to consumables.
var foodRooms = map[string]bool{
	"Pantry":       true,
	"LargeKitchen": true,
	"WineCellar":   true,
	"SmallKitchen": true,
	"DiningRoom":   true,
	"DiningHall":   true,
}

// clueRoomTypes receive objective clues before any other room does.
var clueRoomTypes = map[room.Type]bool{
	room.TypeSpawn:       true,
	room.TypeGarage:      true,
	room.TypeBathroom:    true,
	room.TypeStairs:      true,
	room.TypeHallway:     true,
	room.TypeCommonRoom:  true,
	room.TypePrivateRoom: true,
	room.TypeCloset:      true,
}
