package session

import (
	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi/features/events"
)

// VitalsEvent carries everything a display needs to redraw the player's vitals.
type VitalsEvent struct {
	Life     float64
	MaxLife  float64
	Mana     float64
	MaxMana  float64
	LifeText string
	ManaText string
	LifeFill float64 // Life / MaxLife in [0,1]
	ManaFill float64 // Mana / MaxMana in [0,1]
}

// StateEvent is published when the game state actually changes.
type StateEvent struct {
	From rules.GameState
	To   rules.GameState
}

// ScreenEvent is published when an overlay is shown or hidden.
type ScreenEvent struct {
	Screen components.ScreenID
	Active bool
}

var (
	VitalsChanged = events.NewEventType[VitalsEvent]()
	StateChanged  = events.NewEventType[StateEvent]()
	ScreenChanged = events.NewEventType[ScreenEvent]()
)
