package components

import "github.com/yohamta/donburi"

// ScreenID names an overlay the session can show or hide.
type ScreenID int

const (
	ScreenGameOver ScreenID = iota
	ScreenVictory
	ScreenPauseMenu
)

func (s ScreenID) String() string {
	switch s {
	case ScreenGameOver:
		return "GameOver"
	case ScreenVictory:
		return "Victory"
	case ScreenPauseMenu:
		return "PauseMenu"
	}
	return "Unknown"
}

// ScreensData tracks which overlays are active.
type ScreensData struct {
	GameOver  bool
	Victory   bool
	PauseMenu bool
}

// Active reports whether the given screen is shown.
func (s *ScreensData) Active(id ScreenID) bool {
	switch id {
	case ScreenGameOver:
		return s.GameOver
	case ScreenVictory:
		return s.Victory
	case ScreenPauseMenu:
		return s.PauseMenu
	}
	return false
}

// Set shows or hides a screen and reports whether that changed anything.
func (s *ScreensData) Set(id ScreenID, active bool) bool {
	var flag *bool
	switch id {
	case ScreenGameOver:
		flag = &s.GameOver
	case ScreenVictory:
		flag = &s.Victory
	case ScreenPauseMenu:
		flag = &s.PauseMenu
	default:
		return false
	}
	if *flag == active {
		return false
	}
	*flag = active
	return true
}

var Screens = donburi.NewComponentType[ScreensData]()
