package runmap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/deckrun/tags"
	"github.com/solarlune/resolv"
)

const cellSize = 16

var ErrNoNodes = errors.New("map has no nodes")

// Graph is the directed node graph of a run. Node hit testing goes through a
// resolv space sized to the map.
type Graph struct {
	Width, Height int

	nodes  map[int]*Node
	order  []int
	space  *resolv.Space
	cursor *resolv.Object
}

// NewGraph validates nodes and places them in a collision space.
func NewGraph(nodes []Node, width, height int) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := &Graph{
		Width:  width,
		Height: height,
		nodes:  make(map[int]*Node, len(nodes)),
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
	}

	hasStart := false
	for i := range nodes {
		n := nodes[i]
		if n.ID <= 0 {
			return nil, fmt.Errorf("node %q: id %d must be positive", n.Name, n.ID)
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %d", n.ID)
		}
		switch n.Kind {
		case KindChallenge, KindBoss, KindStore:
		default:
			return nil, fmt.Errorf("node %d: unknown kind %q", n.ID, n.Kind)
		}
		hasStart = hasStart || n.Start
		g.nodes[n.ID] = &n
		g.order = append(g.order, n.ID)

		obj := resolv.NewObject(n.X, n.Y, n.W, n.H, tags.ResolvNode)
		obj.Data = g.nodes[n.ID]
		g.space.Add(obj)
	}
	if !hasStart {
		return nil, errors.New("map has no start node")
	}
	for _, id := range g.order {
		for _, next := range g.nodes[id].Next {
			if _, ok := g.nodes[next]; !ok {
				return nil, fmt.Errorf("node %d: next node %d does not exist", id, next)
			}
		}
	}
	sort.Ints(g.order)

	g.cursor = resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	g.space.Add(g.cursor)
	return g, nil
}

// Node looks up a node by ID.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node ordered by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Reachable lists the nodes the player may enter from the node with ID from.
// From 0 (run not started) only start nodes are reachable.
func (g *Graph) Reachable(from int) []*Node {
	if from == 0 {
		var out []*Node
		for _, id := range g.order {
			if g.nodes[id].Start {
				out = append(out, g.nodes[id])
			}
		}
		return out
	}
	n, ok := g.nodes[from]
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(n.Next))
	for _, id := range n.Next {
		out = append(out, g.nodes[id])
	}
	return out
}

// CanEnter reports whether node to is reachable from node from.
func (g *Graph) CanEnter(from, to int) bool {
	for _, n := range g.Reachable(from) {
		if n.ID == to {
			return true
		}
	}
	return false
}

// NodeAt returns the node under the point (x, y) in map pixels.
func (g *Graph) NodeAt(x, y float64) (*Node, bool) {
	if x < 0 || y < 0 || x >= float64(g.Width) || y >= float64(g.Height) {
		return nil, false
	}
	g.cursor.X = x
	g.cursor.Y = y
	g.cursor.Update()

	check := g.cursor.Check(0, 0, tags.ResolvNode)
	if check == nil {
		return nil, false
	}
	// Check only narrows to shared cells; confirm the point is inside.
	for _, obj := range check.ObjectsByTags(tags.ResolvNode) {
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			return obj.Data.(*Node), true
		}
	}
	return nil, false
}
