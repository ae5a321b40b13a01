package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/deckrun/shared/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testCards(n int) []rules.CardConfig {
	cards := make([]rules.CardConfig, n)
	for i := range cards {
		cards[i] = rules.CardConfig{Name: string(rune('A' + i)), Cost: float64(i), Damage: float64(10 * i)}
	}
	return cards
}

func newTestDeck(n, handSize int) *Manager {
	return New(donburi.NewWorld(), testCards(n), handSize, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestNew_AllCardsInDrawPile(t *testing.T) {
	m := newTestDeck(8, 5)

	draw, hand, discard := m.Counts()
	assert.Equal(t, 8, draw)
	assert.Equal(t, 0, hand)
	assert.Equal(t, 0, discard)
}

func TestStartDeck_DrawsOpeningHand(t *testing.T) {
	m := newTestDeck(8, 5)
	m.ShuffleCards()
	m.StartDeck()

	draw, hand, _ := m.Counts()
	assert.Equal(t, 3, draw)
	assert.Equal(t, 5, hand)
	assert.Len(t, m.Hand(), 5)
}

func TestShuffleCards_GathersEverything(t *testing.T) {
	m := newTestDeck(8, 5)
	m.StartDeck()
	_, ok := m.Play(0)
	require.True(t, ok)

	m.ShuffleCards()

	draw, hand, discard := m.Counts()
	assert.Equal(t, 8, draw)
	assert.Equal(t, 0, hand)
	assert.Equal(t, 0, discard)
}

func TestShuffleCards_KeepsEveryCardOnce(t *testing.T) {
	m := newTestDeck(10, 5)
	m.ShuffleCards()
	m.StartDeck()
	m.Play(2)
	m.ShuffleCards()

	d := m.data()
	seen := map[int]int{}
	for _, idx := range d.DrawPile {
		seen[idx]++
	}
	assert.Len(t, seen, 10)
	for idx, n := range seen {
		assert.Equal(t, 1, n, "card %d", idx)
	}
}

func TestPlay_MovesCardToDiscard(t *testing.T) {
	m := newTestDeck(6, 3)
	m.StartDeck()
	want, ok := m.Card(1)
	require.True(t, ok)

	got, ok := m.Play(1)

	require.True(t, ok)
	assert.Equal(t, want, got)
	_, hand, discard := m.Counts()
	assert.Equal(t, 2, hand)
	assert.Equal(t, 1, discard)
}

func TestPlay_InvalidIndex(t *testing.T) {
	m := newTestDeck(6, 3)
	m.StartDeck()

	_, ok := m.Play(3)
	assert.False(t, ok)
	_, ok = m.Play(-1)
	assert.False(t, ok)
}

func TestDraw_RefillsFromDiscard(t *testing.T) {
	m := newTestDeck(4, 4)
	m.StartDeck()
	m.DiscardHand()

	drawn := m.Draw(3)

	assert.Equal(t, 3, drawn)
	draw, hand, discard := m.Counts()
	assert.Equal(t, 0, discard)
	assert.Equal(t, 1, draw)
	assert.Equal(t, 3, hand)
}

func TestDraw_StopsWhenOutOfCards(t *testing.T) {
	m := newTestDeck(3, 5)

	assert.Equal(t, 3, m.Draw(5))
	assert.Equal(t, 0, m.Draw(1))
}
