package systems

import (
	"fmt"

	"github.com/automoto/deckrun/battle"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateStore buys items on the number keys and leaves on select, back or
// pause.
func NewUpdateStore(sess *session.Manager, store *battle.Store) ecs.System {
	return func(e *ecs.ECS) {
		if sess.GameState() != cfg.StateInStore {
			return
		}
		input := getOrCreateInput(e)

		if slot, ok := cardActionPressed(input); ok {
			if err := store.Buy(slot); err != nil {
				reportBattleError(err)
			}
		}
		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionMenuBack) ||
			input.JustPressed(cfg.ActionPause) {
			store.Leave()
		}
	}
}

// NewDrawStore renders the store stock.
func NewDrawStore(sess *session.Manager, store *battle.Store) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if sess.GameState() != cfg.StateInStore {
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Board.BackgroundColor, false)

		text.Draw(screen, "STORE", fonts.Title.Get(), int(width/2)-50, 80, cfg.Orange)

		y := 120
		for i, item := range store.Items() {
			clr := cfg.White
			if !store.CanBuy(i) {
				clr = cfg.Gray
			}
			line := fmt.Sprintf("%d  %s   %s mana", i+1, item.Name, session.FormatValue(item.Cost))
			text.Draw(screen, line, fonts.Bold.Get(), int(width/2)-150, y, clr)
			y += 30
		}
		if sess.DoubleDamageNextAttack() {
			text.Draw(screen, "Next attack deals double damage", fonts.Small.Get(), int(width/2)-150, y+10, cfg.BrightGreen)
		}

		text.Draw(screen, "1-2: Buy   Enter/Esc/Backspace: Leave", fonts.Small.Get(), int(width/2)-110, int(height)-12, cfg.Gray)
	}
}
