package config

import (
	"github.com/automoto/deckrun/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID = rules.ActionID

const (
	ActionNone       = rules.ActionNone
	ActionPause      = rules.ActionPause
	ActionMenuUp     = rules.ActionMenuUp
	ActionMenuDown   = rules.ActionMenuDown
	ActionMenuSelect = rules.ActionMenuSelect
	ActionMenuBack   = rules.ActionMenuBack
	ActionEndTurn    = rules.ActionEndTurn
	ActionCard1      = rules.ActionCard1
	ActionCard2      = rules.ActionCard2
	ActionCard3      = rules.ActionCard3
	ActionCard4      = rules.ActionCard4
	ActionCard5      = rules.ActionCard5
	ActionFullscreen = rules.ActionFullscreen
	ActionResolution = rules.ActionResolution
	ActionCount      = rules.ActionCount
)

// CardActions maps hand slots to their play action
var CardActions = rules.CardActions

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionEndTurn: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionCard1:      {Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
			ActionCard2:      {Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
			ActionCard3:      {Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}},
			ActionCard4:      {Keys: []ebiten.Key{ebiten.Key4, ebiten.KeyNumpad4}},
			ActionCard5:      {Keys: []ebiten.Key{ebiten.Key5, ebiten.KeyNumpad5}},
			ActionFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionResolution: {Keys: []ebiten.Key{ebiten.KeyF10}},
		},
	}
}
