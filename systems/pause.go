package systems

import (
	"github.com/automoto/deckrun/battle"
	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/session"
	"github.com/automoto/deckrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewPauseUI builds the pause overlay. Button order matches
// components.PauseMenuOption.
func NewPauseUI(sess *session.Manager, ch *battle.Challenge) *ui.OverlayUI {
	return ui.NewOverlayUI(cfg.Pause.Title, cfg.White, cfg.Pause.OverlayColor, []ui.Action{
		components.MenuResume:   {Label: "Resume", Run: sess.ResumeGame},
		components.MenuTryAgain: {Label: "Try Again", Run: ch.Retry},
		components.MenuMainMenu: {Label: "Main Menu", Run: sess.GoToMenu},
		components.MenuExit:     {Label: "Exit", Run: sess.QuitGame},
	})
}

// NewUpdatePause hands the pause action to the session and drives the pause
// menu while paused. Pausing is only offered during a challenge.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(sess *session.Manager, overlay *ui.OverlayUI) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch sess.GameState() {
		case cfg.StateInChallenge, cfg.StatePaused:
			sess.Update(input)
		}

		if !sess.ScreenActive(components.ScreenPauseMenu) {
			return
		}

		pause := sess.PauseMenu()
		pause.SelectedOption = components.PauseMenuOption(
			wrap(int(pause.SelectedOption), menuStep(input), overlay.Len()),
		)

		overlay.SetStatus(pauseHint(input.LastInputMethod))
		overlay.Update()

		if input.JustPressed(cfg.ActionMenuSelect) {
			overlay.Activate(int(pause.SelectedOption))
		}
	}
}

// NewDrawPause renders the pause overlay and highlights the selected option.
func NewDrawPause(sess *session.Manager, overlay *ui.OverlayUI) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !sess.ScreenActive(components.ScreenPauseMenu) {
			return
		}
		overlay.UI.Draw(screen)
		drawSelection(screen, overlay, int(sess.PauseMenu().SelectedOption))
	}
}

// drawSelection outlines the keyboard-selected overlay button.
func drawSelection(screen *ebiten.Image, overlay *ui.OverlayUI, index int) {
	r := overlay.ButtonRect(index)
	if r.Empty() {
		return
	}
	vector.StrokeRect(screen,
		float32(r.Min.X)-2, float32(r.Min.Y)-2,
		float32(r.Dx())+4, float32(r.Dy())+4,
		2, cfg.BrightOrange, false)
}

// pauseHint returns the appropriate hint for the pause menu
func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution while the session's time
// is frozen.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if s, ok := components.Session.First(e.World); ok && components.Session.Get(s).TimeScale == 0 {
			return
		}
		system(e)
	}
}
