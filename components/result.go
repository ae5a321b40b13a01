package components

import "github.com/yohamta/donburi"

// ResultData stores the keyboard selection on the victory / defeat screen.
type ResultData struct {
	SelectedIndex int
}

var Result = donburi.NewComponentType[ResultData]()
