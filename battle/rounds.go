package battle

import (
	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	"github.com/yohamta/donburi"
)

// Rounds counts the turns of the current challenge. Round numbers start at 1.
type Rounds struct {
	entry *donburi.Entry
}

func NewRounds(world donburi.World) *Rounds {
	r := &Rounds{entry: archetypes.Rounds.Spawn(world)}
	r.ResetRounds()
	return r
}

func (r *Rounds) ResetRounds() {
	components.Round.SetValue(r.entry, components.RoundData{Number: 1})
}

// Next advances to the following round and returns its number.
func (r *Rounds) Next() int {
	data := components.Round.Get(r.entry)
	data.Number++
	return data.Number
}

func (r *Rounds) Current() int {
	return components.Round.Get(r.entry).Number
}
