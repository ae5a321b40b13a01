package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameScene shows whichever screen the session state calls for: the run
// map, the store or a challenge, with the HUD and overlays on top.
type GameScene struct {
	ecs  *ecs.ECS
	run  *Run
	once sync.Once
}

func NewGameScene(run *Run) *GameScene {
	return &GameScene{run: run}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	r := gs.run
	gs.ecs = ecs.NewECS(r.World)

	pauseUI := systems.NewPauseUI(r.Session, r.Challenge)
	results := systems.NewResultScreens(r.Session, r.Tracker, r.Challenge)

	// Order matters: input, then screens, then overlays
	gs.ecs.AddSystem(systems.NewBeginTick(r.Session))
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateDisplaySettings)
	gs.ecs.AddSystem(systems.UpdateHUD)
	gs.ecs.AddSystem(systems.InState(systems.NewUpdateRunMap(r.Session, r.Tracker, r.Challenge, r.Store), cfg.StateInMap))
	gs.ecs.AddSystem(systems.InState(systems.NewUpdateStore(r.Session, r.Store), cfg.StateInStore))
	gs.ecs.AddSystem(systems.InState(systems.WithPauseCheck(systems.NewUpdateChallenge(r.Session, r.Challenge)), cfg.StateInChallenge))
	gs.ecs.AddSystem(systems.InState(systems.NewUpdateResult(r.Session, r.Tracker, r.Challenge, results),
		cfg.StateChallengeWon, cfg.StateChallengeLost))
	gs.ecs.AddSystem(systems.InState(systems.NewUpdatePause(r.Session, pauseUI), cfg.StateInChallenge, cfg.StatePaused))

	// Renderers
	gs.ecs.AddRenderer(cfg.LayerDefault, systems.NewDrawRunMap(r.Session, r.Tracker))
	gs.ecs.AddRenderer(cfg.LayerDefault, systems.NewDrawStore(r.Session, r.Store))
	gs.ecs.AddRenderer(cfg.LayerDefault, systems.NewDrawChallenge(r.Session, r.Challenge, r.Deck))
	gs.ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.LayerOverlay, systems.NewDrawResult(r.Session, results))
	gs.ecs.AddRenderer(cfg.LayerOverlay, systems.NewDrawPause(r.Session, pauseUI))
}
