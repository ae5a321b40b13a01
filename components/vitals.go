package components

import "github.com/yohamta/donburi"

// VitalsData holds the player's life and mana. Both stay within [0, Max].
type VitalsData struct {
	Life    float64
	MaxLife float64
	Mana    float64
	MaxMana float64
}

var Vitals = donburi.NewComponentType[VitalsData]()
