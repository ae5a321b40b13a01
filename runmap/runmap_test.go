package runmap

import (
	"testing"

	"github.com/automoto/deckrun/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedRunMap(t *testing.T) {
	g, err := Load(assets.Maps(), assets.RunMapPath)
	require.NoError(t, err)

	assert.Equal(t, 640, g.Width)
	assert.Equal(t, 352, g.Height)
	require.Len(t, g.Nodes(), 7)

	start, ok := g.Node(1)
	require.True(t, ok)
	assert.Equal(t, "Crossroads", start.Name)
	assert.Equal(t, KindChallenge, start.Kind)
	assert.Equal(t, "slime", start.Enemy)
	assert.Equal(t, []int{2, 3}, start.Next)
	assert.True(t, start.Start)

	lair, ok := g.Node(7)
	require.True(t, ok)
	assert.Equal(t, KindBoss, lair.Kind)
	assert.True(t, lair.IsFinal())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(assets.Maps(), "maps/nope.tmx")
	assert.Error(t, err)
}

func testNodes() []Node {
	return []Node{
		{ID: 1, Name: "a", Kind: KindChallenge, X: 10, Y: 10, W: 20, H: 20, Next: []int{2, 3}, Start: true},
		{ID: 2, Name: "b", Kind: KindStore, X: 100, Y: 10, W: 20, H: 20, Next: []int{3}},
		{ID: 3, Name: "c", Kind: KindBoss, X: 100, Y: 100, W: 30, H: 30},
	}
}

func TestGraph_Reachable(t *testing.T) {
	g, err := NewGraph(testNodes(), 200, 200)
	require.NoError(t, err)

	ids := func(nodes []*Node) []int {
		var out []int
		for _, n := range nodes {
			out = append(out, n.ID)
		}
		return out
	}

	assert.Equal(t, []int{1}, ids(g.Reachable(0)))
	assert.Equal(t, []int{2, 3}, ids(g.Reachable(1)))
	assert.Empty(t, g.Reachable(3))
	assert.Nil(t, g.Reachable(42))

	assert.True(t, g.CanEnter(0, 1))
	assert.False(t, g.CanEnter(0, 2))
	assert.True(t, g.CanEnter(2, 3))
	assert.False(t, g.CanEnter(3, 1))
}

func TestGraph_NodeAt(t *testing.T) {
	g, err := NewGraph(testNodes(), 200, 200)
	require.NoError(t, err)

	tests := []struct {
		name   string
		x, y   float64
		wantID int
		wantOK bool
	}{
		{name: "inside first", x: 15, y: 15, wantID: 1, wantOK: true},
		{name: "inside boss", x: 129, y: 129, wantID: 3, wantOK: true},
		{name: "same cell but outside", x: 31, y: 31, wantOK: false},
		{name: "empty area", x: 60, y: 150, wantOK: false},
		{name: "outside map", x: -5, y: 10, wantOK: false},
		{name: "past edge", x: 200, y: 10, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := g.NodeAt(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, n.ID)
			}
		})
	}
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := NewGraph(nil, 100, 100)
	assert.ErrorIs(t, err, ErrNoNodes)

	dangling := testNodes()
	dangling[2].Next = []int{9}
	_, err = NewGraph(dangling, 200, 200)
	assert.ErrorContains(t, err, "does not exist")

	noStart := testNodes()
	noStart[0].Start = false
	_, err = NewGraph(noStart, 200, 200)
	assert.ErrorContains(t, err, "no start node")

	badKind := testNodes()
	badKind[1].Kind = "tavern"
	_, err = NewGraph(badKind, 200, 200)
	assert.ErrorContains(t, err, "unknown kind")

	dup := testNodes()
	dup[1].ID = 1
	_, err = NewGraph(dup, 200, 200)
	assert.ErrorContains(t, err, "duplicate")

	zeroID := []Node{
		{ID: 0, Name: "gate", Kind: KindChallenge, Next: []int{2}, Start: true},
		{ID: 2, Name: "end", Kind: KindBoss},
	}
	_, err = NewGraph(zeroID, 200, 200)
	assert.ErrorContains(t, err, "must be positive")
}

func TestParseNext(t *testing.T) {
	ids, err := parseNext(" 4, 5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, ids)

	ids, err = parseNext("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseNext("4,x")
	assert.Error(t, err)
}
