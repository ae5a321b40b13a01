package systems

import (
	"log"

	"github.com/automoto/deckrun/session"
	"github.com/yohamta/donburi"
)

// RegisterStateLog logs every session state transition and overlay change.
func RegisterStateLog(world donburi.World) {
	session.StateChanged.Subscribe(world, func(w donburi.World, ev session.StateEvent) {
		log.Printf("session: state %s -> %s", ev.From, ev.To)
	})
	session.ScreenChanged.Subscribe(world, func(w donburi.World, ev session.ScreenEvent) {
		if ev.Active {
			log.Printf("session: show %s", ev.Screen)
		} else {
			log.Printf("session: hide %s", ev.Screen)
		}
	})
}
