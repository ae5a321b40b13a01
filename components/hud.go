package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BarData is one eased fill indicator.
type BarData struct {
	Fill   float32 // Currently drawn fill in [0,1]
	Target float32 // Fill the bar is easing toward
	Tween  *gween.Tween
}

// HUDData is the presentation copy of the player's vitals.
type HUDData struct {
	LifeText string
	ManaText string
	Life     BarData
	Mana     BarData
}

var HUD = donburi.NewComponentType[HUDData]()
