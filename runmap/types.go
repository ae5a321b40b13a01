// Package runmap loads the run's node graph from a Tiled map and resolves
// cursor positions to nodes. It is pure data plus a resolv space; nothing
// here draws.
package runmap

// NodeKind says what happens when the player enters a node.
type NodeKind string

const (
	KindChallenge NodeKind = "challenge"
	KindBoss      NodeKind = "boss"
	KindStore     NodeKind = "store"
)

// Node is one stop on the run map.
type Node struct {
	ID         int
	Name       string
	Kind       NodeKind
	Enemy      string // Enemy key for challenge and boss nodes ("" = default)
	X, Y, W, H float64
	Next       []int // IDs reachable from this node
	Start      bool  // Reachable before any node is visited
}

// CenterX and CenterY give the node's midpoint for drawing paths.
func (n *Node) CenterX() float64 { return n.X + n.W/2 }
func (n *Node) CenterY() float64 { return n.Y + n.H/2 }

// IsFinal reports whether the run ends after this node.
func (n *Node) IsFinal() bool { return len(n.Next) == 0 }
