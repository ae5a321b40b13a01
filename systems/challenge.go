package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/deckrun/battle"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/deck"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateChallenge plays cards on the number keys and ends the turn on
// ActionEndTurn. Wrap it with WithPauseCheck.
func NewUpdateChallenge(sess *session.Manager, ch *battle.Challenge) ecs.System {
	return func(e *ecs.ECS) {
		if sess.GameState() != cfg.StateInChallenge {
			return
		}
		input := getOrCreateInput(e)

		if slot, ok := cardActionPressed(input); ok {
			if err := ch.PlayCard(slot); err != nil {
				reportBattleError(err)
			}
		}
		if input.JustPressed(cfg.ActionEndTurn) {
			if err := ch.EndTurn(); err != nil {
				reportBattleError(err)
			}
		}
	}
}

// reportBattleError logs anything that is not a plain rules refusal.
func reportBattleError(err error) {
	if errors.Is(err, battle.ErrNotEnoughMana) || errors.Is(err, battle.ErrInvalidCard) {
		return
	}
	log.Printf("Warning: %v", err)
}

// NewDrawChallenge renders the enemy and the player's hand.
func NewDrawChallenge(sess *session.Manager, ch *battle.Challenge, hand *deck.Manager) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		switch sess.GameState() {
		case cfg.StateInChallenge, cfg.StatePaused, cfg.StateChallengeWon, cfg.StateChallengeLost:
		default:
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Board.BackgroundColor, false)

		drawEnemy(screen, ch, width)
		drawHand(screen, ch, hand, width, height)

		draw, _, discard := hand.Counts()
		info := fmt.Sprintf("Round %d   Draw %d   Discard %d", ch.Round(), draw, discard)
		if sess.DoubleDamageNextAttack() {
			info += "   Next attack x2"
		}
		text.Draw(screen, info, fonts.Small.Get(), int(cfg.HUD.Margin), int(height)-8, cfg.White)
		text.Draw(screen, "1-5: Play card   Space: End turn   Esc: Pause", fonts.Small.Get(),
			int(width/2), int(height)-8, cfg.Gray)
	}
}

func drawEnemy(screen *ebiten.Image, ch *battle.Challenge, width float64) {
	enemy := ch.Enemy()
	barW := cfg.Board.EnemyBarWidth
	x := (width - barW) / 2
	y := 70.0

	text.Draw(screen, enemy.Name, fonts.Bold.Get(), int(x), int(y)-8, cfg.White)

	vector.FillRect(screen, float32(x), float32(y), float32(barW), float32(cfg.HUD.BarHeight), cfg.HUD.BarBgColor, false)
	if enemy.MaxLife > 0 {
		ratio := session.FillRatio(enemy.Life, enemy.MaxLife)
		vector.FillRect(screen, float32(x), float32(y), float32(barW*ratio), float32(cfg.HUD.BarHeight), cfg.Board.EnemyColor, false)
	}

	status := fmt.Sprintf("%s / %s   Attack %s",
		session.FormatValue(enemy.Life), session.FormatValue(enemy.MaxLife), session.FormatValue(enemy.Attack))
	text.Draw(screen, status, fonts.Small.Get(), int(x), int(y+cfg.HUD.BarHeight)+12, cfg.White)
}

func drawHand(screen *ebiten.Image, ch *battle.Challenge, hand *deck.Manager, width, height float64) {
	cards := hand.Hand()
	if len(cards) == 0 {
		return
	}

	total := float64(len(cards))*cfg.Board.CardWidth + float64(len(cards)-1)*cfg.Board.CardGap
	x := (width - total) / 2
	y := height - cfg.Board.CardHeight - 28

	for i, card := range cards {
		bg := cfg.Board.CardColor
		if !ch.CanPlay(i) {
			bg = cfg.Board.CardLockedColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(cfg.Board.CardWidth), float32(cfg.Board.CardHeight), bg, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(cfg.Board.CardWidth), float32(cfg.Board.CardHeight), 1, cfg.Gray, false)

		text.Draw(screen, fmt.Sprintf("%d  %s", i+1, card.Name), fonts.Regular.Get(), int(x)+6, int(y)+16, cfg.White)
		text.Draw(screen, "Cost "+session.FormatValue(card.Cost), fonts.Small.Get(), int(x)+6, int(y)+34, cfg.Blue)
		text.Draw(screen, card.Description, fonts.Small.Get(), int(x)+6, int(y)+52, cfg.White)

		x += cfg.Board.CardWidth + cfg.Board.CardGap
	}
}
