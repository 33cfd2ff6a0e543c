// Package worldgen procedurally generates the mansion: a connected graph of
// rooms populated with people, items, locks and mission objectives.
package worldgen

import (
	"fmt"
	"math/rand"
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/room"
	"hitman/pkg/world"
)

// Every world carries one of each base type, so keys, stairs, a mission room
// and a secret closet are always reachable.
var baseTypes = []spawnType{
	{typ: room.TypeSpawn},
	{typ: room.TypePatio},
	{typ: room.TypeGarden},
	{typ: room.TypeGarage},
	{typ: room.TypeBathroom},
	{typ: room.TypeStairs},
	{typ: room.TypeHallway},
	{typ: room.TypeCommonRoom},
	{typ: room.TypeEntranceWay},
	{typ: room.TypePrivateRoom},
	{typ: room.TypeCloset, hasSecret: true},
	{typ: room.TypeMissionRoom},
}

// MinRoomCount is the size of the guaranteed base set.
var MinRoomCount = len(baseTypes)

// extra candidates drawn beyond the requested count, to absorb losses to
// name de-duplication
const overdraw = 10

type Generator struct {
	rng        *rand.Rand
	usedNames  map[string]bool
	nameSerial int
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, usedNames: make(map[string]bool)}
}

// node is a room under construction: the room, its map, its generation type
// and its connection budget.
type node struct {
	room     *room.Room
	m        *room.Map
	typ      spawnType
	conns    int
	maxConns int
}

func (n *node) maxedOut() bool { return n.conns >= n.maxConns }

func (n *node) connectedTo(other *node) bool {
	_, ok := n.m.Find(other.room.Name)
	return ok
}

// connect adds a symmetric edge; each direction's lock is rolled from the
// destination's type.
func (g *Generator) connect(a, b *node) {
	g.connectWithLocks(a, b, g.lockFor(b.typ), g.lockFor(a.typ))
}

func (g *Generator) connectWithLocks(a, b *node, aToB, bToA room.LockState) {
	a.m.AdjacentRooms = append(a.m.AdjacentRooms, room.AdjacentRoom{Name: b.room.Name, Lock: aToB})
	a.conns++
	b.m.AdjacentRooms = append(b.m.AdjacentRooms, room.AdjacentRoom{Name: a.room.Name, Lock: bToA})
	b.conns++
}

// Generate builds a connected world of at least roomCount rooms and derives
// the mission objectives from its contents.
func (g *Generator) Generate(roomCount int) (*world.Rooms, []game.Objective, error) {
	nodes := g.spawnNodes(roomCount)
	g.connectNodes(nodes)
	g.linkSecretClosets(nodes)

	if err := validateConnected(nodes); err != nil {
		return nil, nil, err
	}

	objectives := findObjectives(nodes)
	g.placeClues(objectives, nodes)

	rooms := world.NewRooms()
	for _, n := range nodes {
		rooms.Put(n.room, n.m)
	}
	return rooms, objectives, nil
}

// spawnNodes picks room types and builds each room with its people and
// items. Base types come first so they survive name de-duplication.
func (g *Generator) spawnNodes(roomCount int) []*node {
	if roomCount < MinRoomCount {
		roomCount = MinRoomCount
	}

	types := make([]spawnType, 0, roomCount+overdraw)
	types = append(types, baseTypes...)
	for i := 0; i < roomCount-MinRoomCount+overdraw; i++ {
		types = append(types, typeWeights[g.rng.Intn(len(typeWeights))])
	}

	seen := make(map[string]bool)
	nodes := make([]*node, 0, roomCount)
	for _, t := range types {
		if len(nodes) == roomCount {
			break
		}
		opts := roomOptions[t.typ]
		nd := opts[g.rng.Intn(len(opts))]
		if seen[strings.ToLower(nd.name)] {
			continue
		}
		seen[strings.ToLower(nd.name)] = true

		t = g.activateClosetChance(t)
		rm := room.New(nd.name, nd.desc, t.typ, g.spawnPeople(t), g.spawnItems(t, nd.name))
		rm.HasSecret = t.hasSecret
		nodes = append(nodes, &node{
			room:     rm,
			m:        &room.Map{CurrentRoom: nd.name},
			typ:      t,
			maxConns: g.connectionLimit(t),
		})
	}
	return nodes
}

// activateClosetChance flips half of the plain closets into secret ones.
func (g *Generator) activateClosetChance(t spawnType) spawnType {
	if t.typ == room.TypeCloset && !t.hasSecret {
		t.hasSecret = g.rng.Intn(2) == 0
	}
	return t
}

// connectNodes runs two passes: a chain pass that strings every room
// together so the graph starts connected, then a fill pass that spends the
// remaining connection budget on random edges. Closets and mission rooms are
// never joined here; their secret links come later.
func (g *Generator) connectNodes(nodes []*node) {
	for i := 0; i+1 < len(nodes); i++ {
		g.connect(nodes[i], nodes[i+1])
	}

	for i, n := range nodes {
		if n.maxedOut() {
			continue
		}
		free := g.findFreeNode(n, nodes[i+1:])
		if free != nil {
			g.connect(n, free)
		}
	}
}

func (g *Generator) findFreeNode(n *node, rest []*node) *node {
	var candidates []*node
	for _, c := range rest {
		if n.typ.typ == room.TypeCloset && c.typ.typ == room.TypeMissionRoom {
			continue
		}
		if n.typ.typ == room.TypeMissionRoom && c.typ.typ == room.TypeCloset {
			continue
		}
		if c.maxedOut() || n.connectedTo(c) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// linkSecretClosets joins every secret closet to every mission room: the
// closet side is a secret door, the mission side opens back freely. Each
// closet's hidden passageway item learns the mission room names so revealing
// it exposes them all.
func (g *Generator) linkSecretClosets(nodes []*node) {
	var closets, missions []*node
	for _, n := range nodes {
		switch {
		case n.typ.typ == room.TypeCloset && n.typ.hasSecret:
			closets = append(closets, n)
		case n.typ.typ == room.TypeMissionRoom:
			missions = append(missions, n)
		}
	}

	missionNames := make([]string, len(missions))
	for i, m := range missions {
		missionNames[i] = m.room.Name
	}

	for _, closet := range closets {
		for _, mission := range missions {
			upsertEdge(closet, mission, room.LockState{Kind: room.Secret})
			upsertEdge(mission, closet, room.LockState{Kind: room.Unlocked})
		}
		g.addPassageway(closet, missionNames)
	}
}

// upsertEdge adds an edge or rewrites the lock on one left by the earlier
// connection passes.
func upsertEdge(a, b *node, lock room.LockState) {
	if adj, ok := a.m.Find(b.room.Name); ok {
		adj.Lock = lock
		return
	}
	a.m.AdjacentRooms = append(a.m.AdjacentRooms, room.AdjacentRoom{Name: b.room.Name, Lock: lock})
	a.conns++
}

func (g *Generator) addPassageway(closet *node, missionNames []string) {
	for _, it := range closet.room.Items {
		if hp, ok := it.(*item.HiddenPassageway); ok {
			hp.Rooms = append(missionNames, hp.Rooms...)
			return
		}
	}
	hp := item.RandomPassageway(g.rng)
	hp.Rooms = missionNames
	closet.room.AddItem(hp)
}

// validateConnected walks the adjacency graph from the first room and
// requires every room to be reachable.
func validateConnected(nodes []*node) error {
	if len(nodes) == 0 {
		return fmt.Errorf("no rooms generated")
	}
	index := make(map[string]*node, len(nodes))
	for _, n := range nodes {
		index[strings.ToLower(n.room.Name)] = n
	}

	visited := make(map[string]bool, len(nodes))
	queue := []*node{nodes[0]}
	visited[strings.ToLower(nodes[0].room.Name)] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, adj := range n.m.AdjacentRooms {
			key := strings.ToLower(adj.Name)
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, index[key])
		}
	}

	for _, n := range nodes {
		if !visited[strings.ToLower(n.room.Name)] {
			return fmt.Errorf("room %s is unreachable", n.room.Name)
		}
	}
	return nil
}

// findObjectives derives the mission list: one kill per target person, one
// collect per intel item.
func findObjectives(nodes []*node) []game.Objective {
	var objectives []game.Objective
	for _, n := range nodes {
		for _, it := range n.room.Items {
			if it.Kind() == item.KindIntel {
				objectives = append(objectives, game.Objective{
					Kind: game.ObjectiveCollectIntel,
					Name: it.ItemName(),
				})
			}
		}
		for _, p := range n.room.People {
			if p.Type == actor.TypeTarget {
				objectives = append(objectives, game.Objective{
					Kind:        game.ObjectiveKill,
					Name:        p.Name,
					TargetState: game.TargetAlive,
				})
			}
		}
	}
	return objectives
}

// placeClues writes one clue per objective into the world, clue-friendly
// room types first, then anywhere once those run out.
func (g *Generator) placeClues(objectives []game.Objective, nodes []*node) {
	i := 0
	force := false
	for i < len(objectives) {
		for _, n := range nodes {
			if i >= len(objectives) {
				return
			}
			if clueRoomTypes[n.typ.typ] || force {
				clue := item.RandomClue(g.rng)
				clue.Text = objectives[i].Name + ": " + objectives[i].InfoString()
				n.room.AddItem(clue)
				i++
			}
		}
		force = true
	}
}
