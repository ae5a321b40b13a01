package components

import (
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

// TickData holds the session state as it was when the current tick began.
type TickData struct {
	State rules.GameState
}

var Tick = donburi.NewComponentType[TickData]()
