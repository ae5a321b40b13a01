package systems

import (
	"testing"

	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHUD_FollowsVitals(t *testing.T) {
	world := donburi.NewWorld()
	RegisterHUD(world)
	sess := session.NewManager(world, session.Options{MaxLife: 100, MaxMana: 50})

	entry, ok := components.HUD.First(world)
	require.True(t, ok)
	hud := components.HUD.Get(entry)
	assert.Equal(t, "Life 100 / 100", hud.LifeText)
	assert.Equal(t, "Mana 50 / 50", hud.ManaText)

	sess.TakeDamage(40)
	assert.Equal(t, "Life 60 / 100", hud.LifeText)
	assert.InDelta(t, 0.6, hud.Life.Target, 1e-6)
	require.NotNil(t, hud.Life.Tween)

	for i := 0; i < 120 && hud.Life.Tween != nil; i++ {
		stepBar(&hud.Life, 1.0/60)
	}
	assert.Nil(t, hud.Life.Tween)
	assert.InDelta(t, 0.6, hud.Life.Fill, 1e-6)
}

func TestRetarget_SameTargetKeepsTween(t *testing.T) {
	bar := &components.BarData{Fill: 1, Target: 1}

	retarget(bar, 0.5)
	tween := bar.Tween
	require.NotNil(t, tween)

	stepBar(bar, 0.1)
	retarget(bar, 0.5)
	assert.Same(t, tween, bar.Tween, "an unchanged target must not restart the ease")
	assert.Less(t, bar.Fill, float32(1))
}
