package battle

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/deck"
	"github.com/automoto/deckrun/session"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var (
	strike = rules.CardConfig{Name: "Strike", Cost: 5, Damage: 10}
	focus  = rules.CardConfig{Name: "Focus", Cost: 0, ManaGain: 10}
	goblin = rules.EnemyConfig{Name: "Goblin", Life: 30, Attack: 7}
)

type fixture struct {
	session   *session.Manager
	deck      *deck.Manager
	rounds    *Rounds
	challenge *Challenge
}

func newFixture(t *testing.T, cards []rules.CardConfig) *fixture {
	t.Helper()
	world := donburi.NewWorld()
	f := &fixture{
		deck:   deck.New(world, cards, 3, deck.WithRand(rand.New(rand.NewPCG(7, 7)))),
		rounds: NewRounds(world),
	}
	f.session = session.NewManager(world, session.Options{
		MaxLife: 100,
		MaxMana: 50,
		Deck:    f.deck,
		Rounds:  f.rounds,
	})
	f.challenge = NewChallenge(world, f.session, f.deck, f.rounds, ChallengeOptions{
		HandSize:     3,
		ManaPerRound: 15,
	})
	return f
}

func repeat(card rules.CardConfig, n int) []rules.CardConfig {
	cards := make([]rules.CardConfig, n)
	for i := range cards {
		cards[i] = card
	}
	return cards
}

func handSize(d *deck.Manager) int {
	_, hand, _ := d.Counts()
	return hand
}

func TestChallenge_Begin(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.rounds.Next()

	f.challenge.Begin(goblin)

	assert.Equal(t, rules.InChallenge, f.session.GameState())
	assert.Equal(t, 1, f.challenge.Round())
	assert.Equal(t, 3, handSize(f.deck))
	enemy := f.challenge.Enemy()
	assert.Equal(t, "Goblin", enemy.Name)
	assert.Equal(t, 30.0, enemy.Life)
	assert.Equal(t, 30.0, enemy.MaxLife)
}

func TestChallenge_PlayCard(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(goblin)

	require.NoError(t, f.challenge.PlayCard(0))

	assert.Equal(t, 45.0, f.session.PlayerMana())
	assert.Equal(t, 20.0, f.challenge.Enemy().Life)
	assert.Equal(t, 2, handSize(f.deck))
	assert.Equal(t, rules.InChallenge, f.session.GameState())
}

func TestChallenge_DoubleDamageIsConsumed(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(goblin)
	f.session.SetDoubleDamageNextAttack(true)

	require.NoError(t, f.challenge.PlayCard(0))
	assert.Equal(t, 10.0, f.challenge.Enemy().Life)
	assert.False(t, f.session.DoubleDamageNextAttack())

	require.NoError(t, f.challenge.PlayCard(0))
	assert.Equal(t, 0.0, f.challenge.Enemy().Life)
}

func TestChallenge_KillingBlowWins(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(goblin)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.challenge.PlayCard(0))
	}

	assert.Equal(t, 0.0, f.challenge.Enemy().Life)
	assert.Equal(t, rules.ChallengeWon, f.session.GameState())
	assert.True(t, f.session.ScreenActive(components.ScreenVictory))
	assert.ErrorIs(t, f.challenge.PlayCard(0), ErrNotInChallenge)
}

func TestChallenge_PlayCardErrors(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))

	assert.ErrorIs(t, f.challenge.PlayCard(0), ErrNotInChallenge)

	f.challenge.Begin(goblin)
	assert.ErrorIs(t, f.challenge.PlayCard(5), ErrInvalidCard)

	f.session.ConsumeMana(48)
	assert.False(t, f.challenge.CanPlay(0))
	assert.ErrorIs(t, f.challenge.PlayCard(0), ErrNotEnoughMana)
	assert.Equal(t, 3, handSize(f.deck))
	assert.Equal(t, 2.0, f.session.PlayerMana())
}

func TestChallenge_ManaGainCard(t *testing.T) {
	f := newFixture(t, repeat(focus, 4))
	f.challenge.Begin(goblin)
	f.session.ConsumeMana(30)

	require.NoError(t, f.challenge.PlayCard(0))

	assert.Equal(t, 30.0, f.session.PlayerMana())
	assert.Equal(t, 30.0, f.challenge.Enemy().Life)
}

func TestChallenge_EndTurn(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(goblin)
	require.NoError(t, f.challenge.PlayCard(0))
	require.NoError(t, f.challenge.PlayCard(0))

	require.NoError(t, f.challenge.EndTurn())

	assert.Equal(t, 93.0, f.session.PlayerLife())
	assert.Equal(t, 2, f.challenge.Round())
	assert.Equal(t, 50.0, f.session.PlayerMana())
	assert.Equal(t, 3, handSize(f.deck))
}

func TestChallenge_EndTurnLethal(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(rules.EnemyConfig{Name: "Dragon", Life: 500, Attack: 250})

	require.NoError(t, f.challenge.EndTurn())

	assert.Equal(t, 0.0, f.session.PlayerLife())
	assert.Equal(t, rules.ChallengeLost, f.session.GameState())
	assert.Equal(t, 1, f.challenge.Round())
	assert.ErrorIs(t, f.challenge.EndTurn(), ErrNotInChallenge)
}

func TestChallenge_RetryRestoresEnemyNotPlayer(t *testing.T) {
	f := newFixture(t, repeat(strike, 8))
	f.challenge.Begin(rules.EnemyConfig{Name: "Ogre", Life: 40, Attack: 60})
	require.NoError(t, f.challenge.PlayCard(0))
	require.NoError(t, f.challenge.EndTurn())
	require.NoError(t, f.challenge.EndTurn())
	require.Equal(t, rules.ChallengeLost, f.session.GameState())

	f.challenge.Retry()

	assert.Equal(t, rules.InChallenge, f.session.GameState())
	assert.False(t, f.session.ScreenActive(components.ScreenGameOver))
	assert.Equal(t, 40.0, f.challenge.Enemy().Life)
	assert.Equal(t, 0.0, f.session.PlayerLife())
	assert.Equal(t, 1, f.challenge.Round())
}

func TestStore_Buy(t *testing.T) {
	f := newFixture(t, repeat(strike, 4))
	store := NewStore(f.session, []rules.StoreItem{
		{Name: "Whetstone", Kind: rules.ItemDoubleDamage, Cost: 20},
		{Name: "Bandage", Kind: rules.ItemHeal, Cost: 15, Amount: 25},
	})

	assert.ErrorIs(t, store.Buy(0), ErrNotInStore)

	store.Enter()
	require.Equal(t, rules.InStore, f.session.GameState())

	require.NoError(t, store.Buy(0))
	assert.True(t, f.session.DoubleDamageNextAttack())
	assert.Equal(t, 30.0, f.session.PlayerMana())

	f.session.TakeDamage(40)
	require.NoError(t, store.Buy(1))
	assert.Equal(t, 85.0, f.session.PlayerLife())
	assert.Equal(t, 15.0, f.session.PlayerMana())

	assert.ErrorIs(t, store.Buy(2), ErrInvalidItem)
	assert.False(t, store.CanBuy(0))
	assert.ErrorIs(t, store.Buy(0), ErrNotEnoughMana)
	assert.Equal(t, 15.0, f.session.PlayerMana())

	store.Leave()
	assert.Equal(t, rules.InMap, f.session.GameState())
}
