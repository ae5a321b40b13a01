package systems

import (
	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/runmap"
	"github.com/automoto/deckrun/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system that starts or resumes a run
// through the session's navigation.
func NewUpdateMenu(sess *session.Manager, tracker *runmap.Tracker) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, tracker)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}
		menu.SelectedIndex = wrap(menu.SelectedIndex, menuStep(input), numOptions)

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuNewRun:
				StartNewRun(sess, tracker)
				sess.GoToGame()
			case components.MainMenuContinue:
				sess.GoToGame()
			case components.MainMenuExit:
				sess.QuitGame()
			}
		}

		// Allow back to exit
		if input.JustPressed(cfg.ActionMenuBack) {
			sess.QuitGame()
		}
	}
}

// NewDrawMenu renders the main menu screen
func NewDrawMenu(tracker *runmap.Tracker) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu := GetOrCreateMenu(e, tracker)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

		title := cfg.Menu.Title
		titleWidth := len(title) * 18 // Approximate width for the title font
		text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

		for i, option := range menu.VisibleOptions {
			y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

			textColor := cfg.Menu.TextColorNormal
			if i == menu.SelectedIndex {
				textColor = cfg.Menu.TextColorSelected
			}

			label := getOptionLabel(option)
			textWidth := len(label) * 10
			x := int((width - float64(textWidth)) / 2)
			text.Draw(screen, label, fonts.Bold.Get(), x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
		}

		if rec := CurrentRunRecord(); rec.Wins+rec.Losses > 0 {
			line := rec.Summary()
			text.Draw(screen, line, fonts.Small.Get(), int((width-float64(len(line)*6))/2), int(height)-30, cfg.Gray)
		}

		input := getOrCreateInput(e)
		hint := getMenuHint(input.LastInputMethod)
		hintWidth := len(hint) * 6
		text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.Menu.TextColorNormal)
	}
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	if int(option) < len(cfg.Menu.MenuOptions) {
		return cfg.Menu.MenuOptions[option]
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// Continue is only offered once a run has left the start.
func GetOrCreateMenu(e *ecs.ECS, tracker *runmap.Tracker) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	menu := components.Menu.Get(entry)

	options := []components.MainMenuOption{components.MainMenuNewRun}
	if _, started := tracker.Current(); started {
		options = append(options, components.MainMenuContinue)
	}
	options = append(options, components.MainMenuExit)

	if len(options) != len(menu.VisibleOptions) {
		menu.SelectedIndex = 0
	}
	menu.VisibleOptions = options
	return menu
}
