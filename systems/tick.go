package systems

import (
	"slices"

	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/session"
	"github.com/yohamta/donburi/ecs"
)

// NewBeginTick snapshots the session state. Must run first.
func NewBeginTick(sess *session.Manager) ecs.System {
	return func(e *ecs.ECS) {
		getOrCreateTick(e).State = sess.GameState()
	}
}

// InState runs system only when the tick began in one of states, so a key
// press that changes the state is not seen again by the next screen.
func InState(system ecs.System, states ...cfg.GameState) ecs.System {
	return func(e *ecs.ECS) {
		if slices.Contains(states, getOrCreateTick(e).State) {
			system(e)
		}
	}
}

func getOrCreateTick(e *ecs.ECS) *components.TickData {
	entry, ok := components.Tick.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Tick))
	}
	return components.Tick.Get(entry)
}
