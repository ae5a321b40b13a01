package components

import "github.com/yohamta/donburi"

// RunMapData tracks the player's progress through the run map.
type RunMapData struct {
	CurrentNode int // Map node ID the player stands on (0 = not started)
	Visited     map[int]bool
	Cursor      int // Keyboard selection among the reachable nodes
}

var RunMap = donburi.NewComponentType[RunMapData]()
