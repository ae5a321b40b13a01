// Package battle runs card challenges and the store on top of the session:
// it spends and restores the player's mana, deals damage both ways and
// decides when a challenge is won.
package battle

import (
	"errors"

	"github.com/automoto/deckrun/shared/rules"
)

var (
	ErrNotInChallenge = errors.New("no challenge in progress")
	ErrNotInStore     = errors.New("not in the store")
	ErrInvalidCard    = errors.New("no card in that slot")
	ErrInvalidItem    = errors.New("no such store item")
	ErrNotEnoughMana  = errors.New("not enough mana")
)

// Session is the part of the session tracker battles drive.
type Session interface {
	GameState() rules.GameState
	ChangeGameState(state rules.GameState)
	StartGame()
	TryAgain()
	GameWon()

	PlayerMana() float64
	ConsumeMana(amount float64)
	GainMana(amount float64)
	TakeDamage(amount float64)
	Heal(amount float64)

	DoubleDamageNextAttack() bool
	SetDoubleDamageNextAttack(v bool)
}

// Hand is the part of the deck a challenge plays from.
type Hand interface {
	Card(handIndex int) (rules.CardConfig, bool)
	Play(handIndex int) (rules.CardConfig, bool)
	DiscardHand()
	Draw(n int) int
}
