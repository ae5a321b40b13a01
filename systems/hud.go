package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/fonts"
	"github.com/automoto/deckrun/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterHUD creates the HUD entity in the session world and subscribes it
// to vitals changes. Call once, before the session manager is created, so
// the start routine's refresh already reaches the HUD.
func RegisterHUD(world donburi.World) {
	archetypes.HUD.Spawn(world)
	session.VitalsChanged.Subscribe(world, onVitalsChanged)
}

func onVitalsChanged(w donburi.World, ev session.VitalsEvent) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	hud.LifeText = fmt.Sprintf("Life %s / %s", ev.LifeText, session.FormatValue(ev.MaxLife))
	hud.ManaText = fmt.Sprintf("Mana %s / %s", ev.ManaText, session.FormatValue(ev.MaxMana))
	retarget(&hud.Life, float32(ev.LifeFill))
	retarget(&hud.Mana, float32(ev.ManaFill))
}

// retarget starts easing a bar from wherever it is now to target.
func retarget(bar *components.BarData, target float32) {
	if bar.Target == target && bar.Tween != nil {
		return
	}
	bar.Target = target
	if cfg.HUD.TweenSeconds <= 0 {
		bar.Fill = target
		bar.Tween = nil
		return
	}
	bar.Tween = gween.New(bar.Fill, target, cfg.HUD.TweenSeconds, ease.OutQuad)
}

// UpdateHUD advances the bar tweens by one tick.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	dt := float32(1.0 / float64(ebiten.TPS()))
	stepBar(&hud.Life, dt)
	stepBar(&hud.Mana, dt)
}

func stepBar(bar *components.BarData, dt float32) {
	if bar.Tween == nil {
		return
	}
	fill, done := bar.Tween.Update(dt)
	bar.Fill = fill
	if done {
		bar.Fill = bar.Target
		bar.Tween = nil
	}
}

// DrawHUD renders the life and mana bars in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)

	y := cfg.HUD.Margin
	drawBar(screen, y, hud.Life.Fill, cfg.HUD.LifeColor, hud.LifeText)
	y += cfg.HUD.BarHeight + cfg.HUD.BarGap
	drawBar(screen, y, hud.Mana.Fill, cfg.HUD.ManaColor, hud.ManaText)
}

func drawBar(screen *ebiten.Image, y float64, fill float32, fg color.RGBA, label string) {
	x := cfg.HUD.Margin

	// Background
	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.BarWidth)*fill, float32(cfg.HUD.BarHeight),
		fg, false)

	text.Draw(screen, label, fonts.Small.Get(),
		int(x+cfg.HUD.BarWidth+cfg.HUD.BarGap), int(y+cfg.HUD.BarHeight)-2,
		cfg.HUD.TextColor)
}
