package archetypes

import (
	"slices"

	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/tags"
	"github.com/yohamta/donburi"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Vitals,
		components.Session,
		components.Pause,
		components.Screens,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
	)
	Deck = newArchetype(
		tags.Deck,
		components.Deck,
	)
	Rounds = newArchetype(
		components.Round,
	)
	RunMap = newArchetype(
		components.RunMap,
	)
	HUD = newArchetype(
		tags.HUD,
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extra cs.
func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(slices.Concat(a.components, cs)...))
}
