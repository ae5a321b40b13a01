package tags

import "github.com/yohamta/donburi"

var (
	Session = donburi.NewTag().SetName("Session")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Deck    = donburi.NewTag().SetName("Deck")
	HUD     = donburi.NewTag().SetName("HUD")
)

// Resolv tags for run map hit testing
const (
	ResolvNode   = "node"
	ResolvCursor = "cursor"
)
