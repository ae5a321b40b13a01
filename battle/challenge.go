package battle

import (
	"fmt"
	"math"

	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

// ChallengeOptions holds the pacing values of a challenge.
type ChallengeOptions struct {
	HandSize     int
	ManaPerRound float64
}

type Challenge struct {
	entry   *donburi.Entry
	session Session
	hand    Hand
	rounds  *Rounds
	opts    ChallengeOptions
}

func NewChallenge(world donburi.World, s Session, hand Hand, rounds *Rounds, opts ChallengeOptions) *Challenge {
	return &Challenge{
		entry:   archetypes.Enemy.Spawn(world),
		session: s,
		hand:    hand,
		rounds:  rounds,
		opts:    opts,
	}
}

// Begin places enemy on the board and starts the session's challenge, which
// reshuffles the deck and resets the rounds.
func (c *Challenge) Begin(enemy rules.EnemyConfig) {
	components.Enemy.SetValue(c.entry, components.EnemyData{
		Name:    enemy.Name,
		Life:    enemy.Life,
		MaxLife: enemy.Life,
		Attack:  enemy.Attack,
	})
	c.session.StartGame()
}

// Retry restores the current enemy and restarts the challenge through the
// session's TryAgain. The player's vitals carry over.
func (c *Challenge) Retry() {
	enemy := components.Enemy.Get(c.entry)
	enemy.Life = enemy.MaxLife
	c.session.TryAgain()
}

// Enemy returns a copy of the current opponent.
func (c *Challenge) Enemy() components.EnemyData {
	return *components.Enemy.Get(c.entry)
}

// Round returns the current round number.
func (c *Challenge) Round() int {
	return c.rounds.Current()
}

// CanPlay reports whether the card in handIndex is affordable right now.
func (c *Challenge) CanPlay(handIndex int) bool {
	card, ok := c.hand.Card(handIndex)
	return ok && card.Cost <= c.session.PlayerMana()
}

// PlayCard spends the card's mana and applies its effects. The pending
// double-damage buff is consumed by the first card that deals damage.
func (c *Challenge) PlayCard(handIndex int) error {
	if c.session.GameState() != rules.InChallenge {
		return ErrNotInChallenge
	}
	card, ok := c.hand.Card(handIndex)
	if !ok {
		return fmt.Errorf("play slot %d: %w", handIndex+1, ErrInvalidCard)
	}
	if card.Cost > c.session.PlayerMana() {
		return fmt.Errorf("play %s (cost %v): %w", card.Name, card.Cost, ErrNotEnoughMana)
	}

	c.hand.Play(handIndex)
	c.session.ConsumeMana(card.Cost)
	if card.ManaGain != 0 {
		c.session.GainMana(card.ManaGain)
	}
	if card.Damage > 0 {
		c.hitEnemy(card.Damage)
	}
	return nil
}

func (c *Challenge) hitEnemy(damage float64) {
	if c.session.DoubleDamageNextAttack() {
		damage *= 2
		c.session.SetDoubleDamageNextAttack(false)
	}
	enemy := components.Enemy.Get(c.entry)
	enemy.Life = math.Max(enemy.Life-damage, 0)
	if enemy.Life == 0 {
		c.session.GameWon()
	}
}

// EndTurn lets the enemy strike. If the player survives, the next round
// begins: mana is replenished and a fresh hand drawn.
func (c *Challenge) EndTurn() error {
	if c.session.GameState() != rules.InChallenge {
		return ErrNotInChallenge
	}
	c.session.TakeDamage(components.Enemy.Get(c.entry).Attack)
	if c.session.GameState() != rules.InChallenge {
		return nil
	}

	c.rounds.Next()
	c.session.GainMana(c.opts.ManaPerRound)
	c.hand.DiscardHand()
	c.hand.Draw(c.opts.HandSize)
	return nil
}
