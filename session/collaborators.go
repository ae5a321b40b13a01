package session

import "github.com/automoto/deckrun/shared/rules"

// DeckManager resets the player's deck when a challenge starts.
type DeckManager interface {
	ShuffleCards()
	StartDeck()
}

// RoundManager resets the challenge round counter.
type RoundManager interface {
	ResetRounds()
}

// Navigator loads a scene by name (rules.SceneMainGame, rules.SceneMenu).
type Navigator interface {
	LoadScene(name string)
}

// Quitter terminates the application.
type Quitter interface {
	Quit()
}

// Input is polled once per tick by Update.
type Input interface {
	JustPressed(action rules.ActionID) bool
}
