package systems

import (
	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// cardActionPressed returns the hand slot whose key went down this frame.
func cardActionPressed(input *components.InputData) (int, bool) {
	for i, action := range cfg.CardActions {
		if input.JustPressed(action) {
			return i, true
		}
	}
	return 0, false
}

// menuStep returns -1, +1 or 0 for the menu navigation actions.
func menuStep(input *components.InputData) int {
	switch {
	case input.JustPressed(cfg.ActionMenuUp):
		return -1
	case input.JustPressed(cfg.ActionMenuDown):
		return 1
	}
	return 0
}

// wrap moves index by step within n options, wrapping around.
func wrap(index, step, n int) int {
	if n == 0 {
		return 0
	}
	return (index + step + n) % n
}
