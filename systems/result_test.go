package systems

import (
	"testing"

	"github.com/automoto/deckrun/components"
	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/runmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newTestTracker(t *testing.T, world donburi.World) *runmap.Tracker {
	t.Helper()
	g, err := runmap.NewGraph([]runmap.Node{
		{ID: 1, Name: "gate", Kind: runmap.KindChallenge, X: 10, Y: 10, W: 20, H: 20, Next: []int{2}, Start: true},
		{ID: 2, Name: "lair", Kind: runmap.KindBoss, X: 60, Y: 10, W: 20, H: 20},
	}, 100, 100)
	require.NoError(t, err)
	return runmap.NewTracker(world, g)
}

func TestStartNewRun(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
	}{
		{"from pause", true},
		{"from challenge", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sess := newSessionECS(t)
			tracker := newTestTracker(t, e.World)

			_, err := tracker.Enter(1)
			require.NoError(t, err)
			sess.StartGame()
			sess.TakeDamage(40)
			sess.ConsumeMana(20)
			sess.SetDoubleDamageNextAttack(true)
			if tt.paused {
				sess.PauseGame()
			}

			StartNewRun(sess, tracker)

			assert.Equal(t, cfg.StateInMap, sess.GameState())
			assert.False(t, sess.IsPaused())
			assert.Equal(t, 1.0, sess.TimeScale())
			assert.False(t, sess.ScreenActive(components.ScreenPauseMenu))
			assert.Equal(t, 100.0, sess.PlayerLife())
			assert.Equal(t, 50.0, sess.PlayerMana())
			assert.False(t, sess.DoubleDamageNextAttack())

			_, started := tracker.Current()
			assert.False(t, started)
			assert.False(t, tracker.Visited(1))
		})
	}
}

func TestStartNewRun_HidesResultScreens(t *testing.T) {
	e, sess := newSessionECS(t)
	tracker := newTestTracker(t, e.World)

	sess.StartGame()
	sess.GameOver()
	require.True(t, sess.ScreenActive(components.ScreenGameOver))

	StartNewRun(sess, tracker)

	assert.False(t, sess.ScreenActive(components.ScreenGameOver))
	assert.False(t, sess.ScreenActive(components.ScreenVictory))
	assert.Equal(t, cfg.StateInMap, sess.GameState())
}
