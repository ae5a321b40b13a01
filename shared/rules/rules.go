// Package rules defines the game's plain data types: session states, input
// actions and the card, enemy and store definitions. It must have zero
// dependencies on ebiten or any graphics library so the gameplay packages
// stay testable headless.
package rules

// GameState is the coarse phase of a play session.
type GameState int

const (
	InChallenge GameState = iota
	ChallengeWon
	ChallengeLost
	InStore
	InMap
	Paused
)

func (s GameState) String() string {
	switch s {
	case InChallenge:
		return "InChallenge"
	case ChallengeWon:
		return "ChallengeWon"
	case ChallengeLost:
		return "ChallengeLost"
	case InStore:
		return "InStore"
	case InMap:
		return "InMap"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}

// Scene names understood by the navigator.
const (
	SceneMainGame = "MainGame"
	SceneMenu     = "Menu"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionEndTurn
	ActionCard1
	ActionCard2
	ActionCard3
	ActionCard4
	ActionCard5
	ActionFullscreen
	ActionResolution
	ActionCount // Must be last - used for array sizing
)

// CardActions maps hand slots to their play action, in slot order.
var CardActions = []ActionID{ActionCard1, ActionCard2, ActionCard3, ActionCard4, ActionCard5}

// CardConfig describes one card in the deck.
type CardConfig struct {
	Name        string
	Cost        float64 // Mana consumed when played
	Damage      float64 // Damage dealt to the enemy
	ManaGain    float64 // Mana restored when played
	Description string
}

// EnemyConfig describes the opponent of a challenge.
type EnemyConfig struct {
	Name   string
	Life   float64
	Attack float64 // Damage dealt to the player at the end of every turn
}

// StoreItemKind identifies what a store purchase does.
type StoreItemKind int

const (
	ItemDoubleDamage StoreItemKind = iota
	ItemHeal
)

// StoreItem is something the player can buy with mana.
type StoreItem struct {
	Name   string
	Kind   StoreItemKind
	Cost   float64
	Amount float64 // Heal amount; unused for buffs
}
