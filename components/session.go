package components

import (
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

// SessionData stores the coarse game phase and the buffs carried between turns.
// This is a singleton component - one session exists for the whole process.
type SessionData struct {
	State                  rules.GameState
	DoubleDamageNextAttack bool
	TimeScale              float64 // 1 while running, 0 while paused
}

var Session = donburi.NewComponentType[SessionData]()
