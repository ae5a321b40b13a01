package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/scenes"
	"github.com/automoto/deckrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	run    *scenes.Run
	quit   bool
}

// LoadScene switches to the named scene. Unknown names are logged and ignored.
func (g *Game) LoadScene(name string) {
	switch name {
	case config.SceneMainGame:
		g.scene = scenes.NewGameScene(g.run)
	case config.SceneMenu:
		g.scene = scenes.NewMenuScene(g.run)
	default:
		log.Printf("Warning: unknown scene %q", name)
	}
}

// Quit ends the game loop after the current tick.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	run, err := scenes.NewRun()
	if err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
		run:    run,
	}
	run.SetNavigator(g, g)

	if config.Debug.SkipMenu {
		g.LoadScene(config.SceneMainGame)
	} else {
		g.LoadScene(config.SceneMenu)
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skipmenu", false, "skip the main menu and start on the run map")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
