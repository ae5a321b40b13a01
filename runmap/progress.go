package runmap

import (
	"fmt"

	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	"github.com/yohamta/donburi"
)

// Tracker records where the player is on a Graph and which nodes were
// cleared. Progress is stored on a components.RunMap entity.
type Tracker struct {
	graph *Graph
	entry *donburi.Entry
}

func NewTracker(world donburi.World, g *Graph) *Tracker {
	t := &Tracker{
		graph: g,
		entry: archetypes.RunMap.Spawn(world),
	}
	t.Reset()
	return t
}

func (t *Tracker) Graph() *Graph { return t.graph }

func (t *Tracker) data() *components.RunMapData { return components.RunMap.Get(t.entry) }

// Reset puts the player back before the start nodes.
func (t *Tracker) Reset() {
	components.RunMap.SetValue(t.entry, components.RunMapData{Visited: map[int]bool{}})
}

// Current returns the node the player stands on, if any.
func (t *Tracker) Current() (*Node, bool) {
	return t.graph.Node(t.data().CurrentNode)
}

// Choices lists the nodes the player may enter next.
func (t *Tracker) Choices() []*Node {
	return t.graph.Reachable(t.data().CurrentNode)
}

// Enter moves the player onto node id if it is reachable.
func (t *Tracker) Enter(id int) (*Node, error) {
	d := t.data()
	if !t.graph.CanEnter(d.CurrentNode, id) {
		return nil, fmt.Errorf("node %d is not reachable from %d", id, d.CurrentNode)
	}
	d.CurrentNode = id
	d.Visited[id] = true
	d.Cursor = 0
	n, _ := t.graph.Node(id)
	return n, nil
}

func (t *Tracker) Visited(id int) bool { return t.data().Visited[id] }

// Complete reports whether the player stands on a final node.
func (t *Tracker) Complete() bool {
	n, ok := t.Current()
	return ok && n.IsFinal()
}

// MoveCursor steps the keyboard selection through Choices, wrapping around.
func (t *Tracker) MoveCursor(step int) {
	n := len(t.Choices())
	if n == 0 {
		return
	}
	d := t.data()
	d.Cursor = ((d.Cursor+step)%n + n) % n
}

// Selected returns the choice under the keyboard cursor.
func (t *Tracker) Selected() (*Node, bool) {
	choices := t.Choices()
	c := t.data().Cursor
	if c < 0 || c >= len(choices) {
		return nil, false
	}
	return choices[c], true
}
