package systems

import (
	"fmt"

	"github.com/automoto/deckrun/battle"
	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/runmap"
	"github.com/automoto/deckrun/session"
	"github.com/automoto/deckrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ResultScreens holds the victory and defeat overlays.
type ResultScreens struct {
	Victory *ui.OverlayUI
	Defeat  *ui.OverlayUI
}

// NewResultScreens builds both overlays with their button actions.
func NewResultScreens(sess *session.Manager, tracker *runmap.Tracker, ch *battle.Challenge) *ResultScreens {
	cont := func() {
		if tracker.Complete() {
			StartNewRun(sess, tracker)
			return
		}
		sess.ReturnToMap()
	}
	newRun := func() { StartNewRun(sess, tracker) }

	return &ResultScreens{
		Victory: ui.NewOverlayUI(cfg.Result.VictoryTitle, cfg.Result.VictoryColor, cfg.Result.BackgroundColor, []ui.Action{
			{Label: "Continue", Run: cont},
			{Label: "Main Menu", Run: sess.GoToMenu},
			{Label: "Exit", Run: sess.QuitGame},
		}),
		Defeat: ui.NewOverlayUI(cfg.Result.DefeatTitle, cfg.Result.DefeatColor, cfg.Result.BackgroundColor, []ui.Action{
			{Label: "Try Again", Run: ch.Retry},
			{Label: "New Run", Run: newRun},
			{Label: "Main Menu", Run: sess.GoToMenu},
			{Label: "Exit", Run: sess.QuitGame},
		}),
	}
}

// active returns the overlay currently shown, if any.
func (r *ResultScreens) active(sess *session.Manager) *ui.OverlayUI {
	switch {
	case sess.ScreenActive(components.ScreenVictory):
		return r.Victory
	case sess.ScreenActive(components.ScreenGameOver):
		return r.Defeat
	}
	return nil
}

// StartNewRun clears map progress and refills the player's vitals.
func StartNewRun(sess *session.Manager, tracker *runmap.Tracker) {
	if sess.IsPaused() {
		sess.ResumeGame()
	}
	sess.SetDoubleDamageNextAttack(false)
	tracker.Reset()
	sess.ResetVitals()
	sess.ReturnToMap()
}

// NewUpdateResult drives whichever result overlay is shown.
func NewUpdateResult(sess *session.Manager, tracker *runmap.Tracker, ch *battle.Challenge, screens *ResultScreens) ecs.System {
	return func(e *ecs.ECS) {
		overlay := screens.active(sess)
		if overlay == nil || sess.IsPaused() {
			return
		}
		input := getOrCreateInput(e)
		result := getOrCreateResult(e)

		result.SelectedIndex = wrap(result.SelectedIndex, menuStep(input), overlay.Len())

		if overlay == screens.Victory && tracker.Complete() {
			overlay.SetTitle("RUN COMPLETE")
		} else if overlay == screens.Victory {
			overlay.SetTitle(cfg.Result.VictoryTitle)
		}
		overlay.SetStatus(fmt.Sprintf("%s   Round %d", ch.Enemy().Name, ch.Round()))
		overlay.Update()

		if input.JustPressed(cfg.ActionMenuSelect) {
			index := result.SelectedIndex
			result.SelectedIndex = 0
			overlay.Activate(index)
		}
	}
}

// NewDrawResult renders the active result overlay.
func NewDrawResult(sess *session.Manager, screens *ResultScreens) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		overlay := screens.active(sess)
		if overlay == nil || sess.IsPaused() {
			return
		}
		overlay.UI.Draw(screen)
		drawSelection(screen, overlay, getOrCreateResult(e).SelectedIndex)
	}
}

// getOrCreateResult returns the singleton Result component, creating if needed
func getOrCreateResult(e *ecs.ECS) *components.ResultData {
	entry, ok := components.Result.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Result))
	}
	return components.Result.Get(entry)
}
