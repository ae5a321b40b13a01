package components

import "github.com/yohamta/donburi"

// EnemyData is the opponent of the current challenge.
type EnemyData struct {
	Name    string
	Life    float64
	MaxLife float64
	Attack  float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
