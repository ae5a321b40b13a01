package scenes

import (
	"fmt"

	"github.com/automoto/deckrun/assets"
	"github.com/automoto/deckrun/battle"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/deck"
	"github.com/automoto/deckrun/runmap"
	"github.com/automoto/deckrun/session"
	"github.com/automoto/deckrun/systems"
	"github.com/yohamta/donburi"
)

// Run bundles the long-lived game objects. They share one world that
// outlives every scene.
type Run struct {
	World     donburi.World
	Session   *session.Manager
	Deck      *deck.Manager
	Rounds    *battle.Rounds
	Challenge *battle.Challenge
	Store     *battle.Store
	Tracker   *runmap.Tracker
}

// NewRun loads the run map and wires the session to its collaborators.
// Navigation is left unset; the caller provides it with SetNavigator.
func NewRun() (*Run, error) {
	graph, err := runmap.Load(assets.Maps(), assets.RunMapPath)
	if err != nil {
		return nil, fmt.Errorf("load run map: %w", err)
	}

	world := donburi.NewWorld()

	// Observers go first so the session's start routine reaches them.
	systems.RegisterHUD(world)
	systems.RegisterStateLog(world)

	r := &Run{World: world}
	r.Deck = deck.New(world, cfg.Deck.Cards, cfg.Deck.HandSize)
	r.Rounds = battle.NewRounds(world)
	r.Session = session.NewManager(world, session.Options{
		MaxLife: cfg.Player.MaxLife,
		MaxMana: cfg.Player.MaxMana,
		Deck:    r.Deck,
		Rounds:  r.Rounds,
	})
	r.Challenge = battle.NewChallenge(world, r.Session, r.Deck, r.Rounds, battle.ChallengeOptions{
		HandSize:     cfg.Deck.HandSize,
		ManaPerRound: cfg.Round.ManaPerRound,
	})
	r.Store = battle.NewStore(r.Session, cfg.Store.Items)
	r.Tracker = runmap.NewTracker(world, graph)

	systems.RegisterRunRecorder(world, r.Rounds.Current, r.Tracker.Complete)
	return r, nil
}

// SetNavigator hands scene navigation and process control to the session.
func (r *Run) SetNavigator(nav session.Navigator, quitter session.Quitter) {
	r.Session.SetNavigator(nav, quitter)
}
