package systems

import (
	"log"

	"github.com/automoto/deckrun/battle"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/runmap"
	"github.com/automoto/deckrun/session"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRunMap lets the player pick the next node, by mouse or by
// keyboard, and enters it.
func NewUpdateRunMap(sess *session.Manager, tracker *runmap.Tracker, ch *battle.Challenge, store *battle.Store) ecs.System {
	return func(e *ecs.ECS) {
		if sess.GameState() != cfg.StateInMap {
			return
		}
		input := getOrCreateInput(e)

		tracker.MoveCursor(menuStep(input))

		var target *runmap.Node
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if n, ok := tracker.Graph().NodeAt(float64(x), float64(y)); ok {
				target = n
			}
		} else if input.JustPressed(cfg.ActionMenuSelect) {
			if n, ok := tracker.Selected(); ok {
				target = n
			}
		}
		if target == nil {
			return
		}

		node, err := tracker.Enter(target.ID)
		if err != nil {
			return
		}
		switch node.Kind {
		case runmap.KindStore:
			store.Enter()
		default:
			ch.Begin(enemyFor(node))
		}
	}
}

// enemyFor resolves the enemy a challenge node names.
func enemyFor(node *runmap.Node) rules.EnemyConfig {
	if enemy, ok := cfg.Challenge.Enemies[node.Enemy]; ok {
		return enemy
	}
	if node.Enemy != "" {
		log.Printf("Warning: node %d names unknown enemy %q, using %q", node.ID, node.Enemy, cfg.Challenge.Default)
	}
	return cfg.Challenge.Enemies[cfg.Challenge.Default]
}

// NewDrawRunMap renders the node graph, its links and the player's position.
func NewDrawRunMap(sess *session.Manager, tracker *runmap.Tracker) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if sess.GameState() != cfg.StateInMap {
			return
		}

		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

		g := tracker.Graph()
		for _, n := range g.Nodes() {
			for _, id := range n.Next {
				next, _ := g.Node(id)
				vector.StrokeLine(screen,
					float32(n.CenterX()), float32(n.CenterY()),
					float32(next.CenterX()), float32(next.CenterY()),
					2, cfg.Gray, false)
			}
		}

		choices := map[int]bool{}
		for _, n := range tracker.Choices() {
			choices[n.ID] = true
		}
		selected, _ := tracker.Selected()
		current, _ := tracker.Current()

		for _, n := range g.Nodes() {
			clr := cfg.Board.NodeColors[string(n.Kind)]
			if tracker.Visited(n.ID) {
				clr = cfg.Board.NodeVisited
			}
			vector.FillRect(screen, float32(n.X), float32(n.Y), float32(n.W), float32(n.H), clr, false)

			switch {
			case current != nil && n.ID == current.ID:
				vector.StrokeRect(screen, float32(n.X)-3, float32(n.Y)-3, float32(n.W)+6, float32(n.H)+6, 2, cfg.White, false)
			case selected != nil && n.ID == selected.ID:
				vector.StrokeRect(screen, float32(n.X)-3, float32(n.Y)-3, float32(n.W)+6, float32(n.H)+6, 2, cfg.BrightOrange, false)
			case choices[n.ID]:
				vector.StrokeRect(screen, float32(n.X)-2, float32(n.Y)-2, float32(n.W)+4, float32(n.H)+4, 1, cfg.BrightOrange, false)
			}

			text.Draw(screen, n.Name, fonts.Small.Get(), int(n.X), int(n.Y+n.H)+12, cfg.White)
		}

		text.Draw(screen, "Click a highlighted node or use Arrows + Enter", fonts.Small.Get(),
			int(cfg.HUD.Margin), int(height)-8, cfg.Gray)
	}
}
