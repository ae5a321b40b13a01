package components

import "github.com/yohamta/donburi"

// DeckData holds card indices into the configured card list.
type DeckData struct {
	DrawPile []int
	Hand     []int
	Discard  []int
}

var Deck = donburi.NewComponentType[DeckData]()
