package components

import (
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current         [rules.ActionCount]bool // Current frame's Pressed state
	Previous        [rules.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod             // Most recently used input method
}

// JustPressed reports whether the action went down this frame.
func (i *InputData) JustPressed(action rules.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
