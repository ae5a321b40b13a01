package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs  *ecs.ECS
	run  *Run
	once sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(run *Run) *MenuScene {
	return &MenuScene{run: run}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(ms.run.World)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateDisplaySettings)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.run.Session, ms.run.Tracker))

	ms.ecs.AddRenderer(cfg.LayerDefault, systems.NewDrawMenu(ms.run.Tracker))
}
