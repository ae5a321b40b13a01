// Package deck keeps the player's draw pile, hand and discard on a donburi
// entity. Cards are referenced by their index in the configured card list.
package deck

import (
	"math/rand/v2"

	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

type Manager struct {
	entry    *donburi.Entry
	cards    []rules.CardConfig
	handSize int
	rng      *rand.Rand
}

// Option customizes a Manager.
type Option func(*Manager)

// WithRand sets the shuffle source. Tests use it for a fixed order.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// New creates the deck entity in world with every card in the draw pile.
func New(world donburi.World, cards []rules.CardConfig, handSize int, opts ...Option) *Manager {
	m := &Manager{
		entry:    archetypes.Deck.Spawn(world),
		cards:    cards,
		handSize: handSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	pile := make([]int, len(cards))
	for i := range pile {
		pile[i] = i
	}
	components.Deck.SetValue(m.entry, components.DeckData{DrawPile: pile})
	return m
}

func (m *Manager) data() *components.DeckData { return components.Deck.Get(m.entry) }

// ShuffleCards gathers the hand and discard back into the draw pile and
// shuffles it.
func (m *Manager) ShuffleCards() {
	d := m.data()
	d.DrawPile = append(d.DrawPile, d.Hand...)
	d.DrawPile = append(d.DrawPile, d.Discard...)
	d.Hand = d.Hand[:0]
	d.Discard = d.Discard[:0]
	m.shuffle(d.DrawPile)
}

// StartDeck draws the opening hand.
func (m *Manager) StartDeck() {
	m.Draw(m.handSize - len(m.data().Hand))
}

// Draw moves up to n cards from the draw pile into the hand. An empty pile
// is refilled from the shuffled discard. It returns the number drawn.
func (m *Manager) Draw(n int) int {
	d := m.data()
	drawn := 0
	for ; drawn < n; drawn++ {
		if len(d.DrawPile) == 0 {
			if len(d.Discard) == 0 {
				break
			}
			d.DrawPile, d.Discard = d.Discard, d.DrawPile[:0]
			m.shuffle(d.DrawPile)
		}
		last := len(d.DrawPile) - 1
		d.Hand = append(d.Hand, d.DrawPile[last])
		d.DrawPile = d.DrawPile[:last]
	}
	return drawn
}

// Play removes the card at handIndex from the hand, discards it and returns
// its definition.
func (m *Manager) Play(handIndex int) (rules.CardConfig, bool) {
	card, ok := m.Card(handIndex)
	if !ok {
		return rules.CardConfig{}, false
	}
	d := m.data()
	d.Discard = append(d.Discard, d.Hand[handIndex])
	d.Hand = append(d.Hand[:handIndex], d.Hand[handIndex+1:]...)
	return card, true
}

// DiscardHand moves the whole hand to the discard pile.
func (m *Manager) DiscardHand() {
	d := m.data()
	d.Discard = append(d.Discard, d.Hand...)
	d.Hand = d.Hand[:0]
}

// Card returns the definition of the card at handIndex.
func (m *Manager) Card(handIndex int) (rules.CardConfig, bool) {
	d := m.data()
	if handIndex < 0 || handIndex >= len(d.Hand) {
		return rules.CardConfig{}, false
	}
	return m.cards[d.Hand[handIndex]], true
}

// Hand returns the definitions of the cards in hand, in slot order.
func (m *Manager) Hand() []rules.CardConfig {
	d := m.data()
	hand := make([]rules.CardConfig, len(d.Hand))
	for i, idx := range d.Hand {
		hand[i] = m.cards[idx]
	}
	return hand
}

// Counts returns the sizes of the draw pile, hand and discard.
func (m *Manager) Counts() (draw, hand, discard int) {
	d := m.data()
	return len(d.DrawPile), len(d.Hand), len(d.Discard)
}

func (m *Manager) shuffle(pile []int) {
	m.rng.Shuffle(len(pile), func(i, j int) { pile[i], pile[j] = pile[j], pile[i] })
}
