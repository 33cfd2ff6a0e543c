package item

import "math/rand"

// The generation catalog. Every function returns a fresh item so spawned
// copies never share state.

type meleeSpec struct {
	name, desc string
	damage     int
	koChance   int
	visibility Visibility
}

var meleeCatalog = []meleeSpec{
	{"Knife", "A knife", 30, 0, VisibilityMedium},
	{"Shovel", "A typical garden shovel", 50, 2, VisibilityMedium},
	{"ScrewDriver", "A well worn screwdriver", 15, 0, VisibilityLow},
	{"MetalPipe", "A heavy piece of pipe", 50, 3, VisibilityHigh},
	{"Pen", "A calligraphy pen", 10, 0, VisibilityLow},
	{"Cleaver", "A large butcher knife", 40, 0, VisibilityMedium},
	{"Mop", "An old mop", 5, 10, VisibilityLow},
	{"HedgeTrimmers", "A set of hedge trimmers. They look sharp", 25, 0, VisibilityMedium},
	{"Pencil", "A well sharpened writing utensil", 15, 0, VisibilityLow},
	{"Katana", "A traditional Japanese sword", 60, 0, VisibilityMedium},
	{"Claymore", "A large two handed sword", 45, 4, VisibilityMedium},
	{"TVRemote", "An everyday TV remote", 10, 15, VisibilityMedium},
}

type rangedSpec struct {
	name, desc string
	damage     int
	ammo       int
	visibility Visibility
}

var rangedCatalog = []rangedSpec{
	{"Shotgun", "A trusty double barrelled shotgun", 100, 2, VisibilityHigh},
	{"HarpoonGun", "A projectile weapon used for underwater fishing", 100, 1, VisibilityMedium},
	{"NailGun", "A seemingly harmless tool. In the right hands it can be a deadly weapon.", 15, 20, VisibilityLow},
	{"1911", "An American classic", 30, 8, VisibilityMedium},
	{"M4", "A standard issue military carbine", 60, 30, VisibilityHigh},
	{"M4Suppressed", "The M4, you know and love, with a suppressor attached", 35, 30, VisibilityMedium},
	{"P226", "A special forces pistol", 30, 15, VisibilityMedium},
	{"P226Suppressed", "The same pistol, but quieter", 20, 15, VisibilityLow},
}

type pair struct{ name, desc string }

var clueCatalog = []pair{
	{"SecretDocument", "A shady piece of paper"},
	{"Memo", "An internal communication from the family"},
	{"Letter", "A letter from one of the family's contacts"},
}

var passagewayCatalog = []pair{
	{"Bookcase", "A dusty bookcase. One of the books has some fingerprints on it. Interesting"},
	{"Panel", "An access panel on the wall"},
	{"Vent", "An airconditioning vent"},
}

type consumableSpec struct {
	name, desc  string
	alcohol     bool
	healthBonus int
	uses        int
}

var consumableCatalog = []consumableSpec{
	{"Pizza", "A supreme pizza with all of the standard toppings", false, 20, 4},
	{"Burrito", "A spicy burrito", false, 15, 5},
	{"Apple", "A juicy apple", false, 10, 4},
	{"MtDew", "A crisp cool beverage with all of the sugar and caffeine an assassin can handle", false, 10, 2},
	{"Pepsi", "A refreshing soda", false, 10, 2},
	{"Coke", "An American classic", false, 10, 2},
	{"Goldy", "A brilliant goldfish. It looks tasty, if you're into that sort of thing.", false, 20, 1},
	{"Grapes", "A handful of grapes picked from the grape vines in the North Patio.", false, 5, 6},
	{"Cake", "A lemon cake. It looks delicious", false, 15, 4},
	{"Wine", "A bottle of red wine. It looks expensive", true, 10, 6},
	{"Vodka", "A high quality Russian liquor", true, 25, 3},
	{"Rum", "A rich Caribbean booze", true, 20, 4},
	{"Whiskey", "A strong American brew", true, 30, 3},
	{"Water", "It's water", false, 10, 4},
	{"Special", "A special mix for the father", true, 100, 2},
}

var displayCatalog = []pair{
	{"Lillies", "A small display of flowers on the patio table. They must have come from the Mother's garden."},
	{"FishPicture", "A family fishing picture. The father and son are struggling to hold a huge marlin for the picture."},
	{"AfricaPicture", "A picture of the father with a robed man in the desert"},
	{"JunglePicture", "A picture of the father with a rich looking man in a jungle somewhere"},
	{"SkiMagazine", "A magazine about skiing in the Swiss Alps. A skiier carving a corner is featured on the cover"},
	{"CallOfDestiny", "There is a futuristic man on the cover with a gun. This must be what the kids are playing nowadays."},
	{"ZStation5", "The latest game console"},
	{"FatherPortrait", "A regal portrait of the father. He is in some sort of military dress uniform"},
	{"MotherPortrait", "A portrait of the mother. She's in a large ball gown"},
	{"SonPortrait", "A portrait of the son. He is in a nice tuxedo"},
	{"DaughterPortrait", "She is a spitting image of her mother"},
	{"AfricanHistory", "A large book with a map of Africa on the cover"},
}

var largeDisplayCatalog = []pair{
	{"JetSki", "A blue jet ski"},
	{"HorseHedge", "A decorative hedge hand crafted to look like a horse"},
	{"ElephantHedge", "A decorative hedge hand crafted to look like an elephant"},
	{"DolphinHedge", "A decorative hedge hand crafted to look like a dolphin"},
	{"Pool", "A fancy inground pool with a rock display on one side"},
	{"FishingBoat", "A fancy fishing boat"},
}

var escapeCatalog = []pair{
	{"Horse", "A large thoroughbred"},
	{"Bugatti", "An expensive car"},
	{"Tesla", "A sleek electric car"},
}

var furnitureCatalog = []pair{
	{"Couch", "A large leather couch"},
	{"TV", "A large flatscreen TV. Some sort of shooter game is on the screen."},
	{"Bar", "A modern looking bar. It is very clean."},
	{"LoveSeat", "A small couch"},
	{"Stool", "A small stool"},
	{"WoodenStool", "A wooden stool"},
	{"BarSeat", "A plain seat for sitting at a bar"},
}

var intelCatalog = []pair{
	{"DrugManifest", "A listing of all of the father's drug shipments"},
	{"PersonManifest", "A record of the father's human trafficking shipments"},
	{"CocaineResidue", "Trace powder on the table. It seems like someone was doing lines recently"},
}

var poisonCatalog = []pair{
	{"RattlesnakeVenom", "Potent venom from a local viper"},
	{"Venom", "An unknown concoction"},
}

var containerCatalog = []pair{
	{"Chest", "A storage chest"},
	{"OrnateShelf", "An ornate shelf"},
	{"PlainCabinet", "A plain cabinet"},
	{"KoiPond", "A koi pond surrounded by decorative stones"},
	{"TrashCan", "A place for people to dispose of their garbage"},
	{"ToolBox", "A place for storing tools"},
	{"FancyCabinet", "A fancy cabinet"},
	{"CoffeeTable", "A table for setting drinks on"},
	{"Counter", "A counter for holding various items"},
	{"WoodTable", "A wooden table"},
}

func RandomMelee(rng *rand.Rand) *Melee {
	s := meleeCatalog[rng.Intn(len(meleeCatalog))]
	return &Melee{
		Meta:       Meta{Name: s.name, Description: s.desc},
		Damage:     s.damage,
		Visibility: s.visibility,
		KOChance:   s.koChance,
	}
}

func RandomRanged(rng *rand.Rand) *Ranged {
	s := rangedCatalog[rng.Intn(len(rangedCatalog))]
	return &Ranged{
		Meta:       Meta{Name: s.name, Description: s.desc},
		Damage:     s.damage,
		Visibility: s.visibility,
		Ammo:       s.ammo,
	}
}

// KeyFor returns the named key for a door color.
func KeyFor(color DoorCode) *Key {
	switch color {
	case Blue:
		return &Key{Meta: Meta{Name: "BlueKey", Description: "A BlueKey"}, Color: Blue}
	case Red:
		return &Key{Meta: Meta{Name: "RedKey", Description: "A RedKey"}, Color: Red}
	case Green:
		return &Key{Meta: Meta{Name: "GreenKey", Description: "A GreenKey"}, Color: Green}
	case White:
		return &Key{Meta: Meta{Name: "WhiteKey", Description: "A WhiteKey"}, Color: White}
	default:
		return &Key{Meta: Meta{Name: "BlackKey", Description: "A BlackKey"}, Color: Black}
	}
}

// RandomClue returns a clue shell; the generator fills in the objective text.
func RandomClue(rng *rand.Rand) *Clue {
	p := clueCatalog[rng.Intn(len(clueCatalog))]
	return &Clue{Meta: Meta{Name: p.name, Description: p.desc}}
}

// RandomPassageway returns a passageway shell; the generator fills in the
// linked room names.
func RandomPassageway(rng *rand.Rand) *HiddenPassageway {
	p := passagewayCatalog[rng.Intn(len(passagewayCatalog))]
	return &HiddenPassageway{Meta: Meta{Name: p.name, Description: p.desc}}
}

func RandomConsumable(rng *rand.Rand) *Consumable {
	s := consumableCatalog[rng.Intn(len(consumableCatalog))]
	return &Consumable{
		Meta:        Meta{Name: s.name, Description: s.desc},
		Alcohol:     s.alcohol,
		HealthBonus: s.healthBonus,
		UsesLeft:    s.uses,
	}
}

func RandomDisplay(rng *rand.Rand) *Display {
	p := displayCatalog[rng.Intn(len(displayCatalog))]
	return &Display{Meta{Name: p.name, Description: p.desc}}
}

func RandomLargeDisplay(rng *rand.Rand) *LargeDisplay {
	p := largeDisplayCatalog[rng.Intn(len(largeDisplayCatalog))]
	return &LargeDisplay{Meta{Name: p.name, Description: p.desc}}
}

func RandomEscape(rng *rand.Rand) *Escape {
	p := escapeCatalog[rng.Intn(len(escapeCatalog))]
	return &Escape{Meta{Name: p.name, Description: p.desc}}
}

func RandomFurniture(rng *rand.Rand) *Furniture {
	p := furnitureCatalog[rng.Intn(len(furnitureCatalog))]
	return &Furniture{Meta{Name: p.name, Description: p.desc}}
}

func RandomIntel(rng *rand.Rand) *Intel {
	p := intelCatalog[rng.Intn(len(intelCatalog))]
	return &Intel{Meta{Name: p.name, Description: p.desc}}
}

func RandomPoison(rng *rand.Rand) *Poison {
	p := poisonCatalog[rng.Intn(len(poisonCatalog))]
	return &Poison{Meta{Name: p.name, Description: p.desc}}
}

// containerContents weights melee 2, ranged 2, consumable 4, poison 1.
func RandomContainer(rng *rand.Rand) *Container {
	const capacity = 2
	items := make(List, 0, capacity)
	for i := 0; i < capacity; i++ {
		switch n := rng.Intn(9); {
		case n < 2:
			items = append(items, RandomMelee(rng))
		case n < 4:
			items = append(items, RandomRanged(rng))
		case n < 8:
			items = append(items, RandomConsumable(rng))
		default:
			items = append(items, RandomPoison(rng))
		}
	}
	p := containerCatalog[rng.Intn(len(containerCatalog))]
	return &Container{Meta: Meta{Name: p.name, Description: p.desc}, Items: items}
}
