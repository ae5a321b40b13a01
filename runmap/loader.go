package runmap

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// NodesLayer is the object group holding the map nodes.
const NodesLayer = "Nodes"

// Load parses a TMX file and builds its node graph. It takes an fs.FS so
// callers can pass the embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Graph, error) {
	runMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var nodes []Node
	for _, og := range runMap.ObjectGroups {
		if og.Name != NodesLayer {
			continue
		}
		for _, o := range og.Objects {
			next, err := parseNext(o.Properties.GetString("next"))
			if err != nil {
				return nil, fmt.Errorf("node %d (%s): %w", o.ID, o.Name, err)
			}
			nodes = append(nodes, Node{
				ID:    int(o.ID),
				Name:  o.Name,
				Kind:  NodeKind(o.Properties.GetString("kind")),
				Enemy: o.Properties.GetString("enemy"),
				X:     o.X,
				Y:     o.Y,
				W:     o.Width,
				H:     o.Height,
				Next:  next,
				Start: o.Properties.GetBool("start"),
			})
		}
	}

	g, err := NewGraph(nodes, runMap.Width*runMap.TileWidth, runMap.Height*runMap.TileHeight)
	if err != nil {
		return nil, fmt.Errorf("build graph from %s: %w", tmxPath, err)
	}
	return g, nil
}

func parseNext(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse next %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
