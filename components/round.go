package components

import "github.com/yohamta/donburi"

type RoundData struct {
	Number int
}

var Round = donburi.NewComponentType[RoundData]()
