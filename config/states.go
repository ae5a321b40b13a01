package config

import "github.com/automoto/deckrun/shared/rules"

// Type aliases so screens and systems can keep using config.GameState.
type GameState = rules.GameState

// Re-export session state constants.
const (
	StateInChallenge   = rules.InChallenge
	StateChallengeWon  = rules.ChallengeWon
	StateChallengeLost = rules.ChallengeLost
	StateInStore       = rules.InStore
	StateInMap         = rules.InMap
	StatePaused        = rules.Paused
)

// Re-export scene names.
const (
	SceneMainGame = rules.SceneMainGame
	SceneMenu     = rules.SceneMenu
)
