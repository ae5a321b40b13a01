package systems

import (
	"testing"

	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/session"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newSessionECS(t *testing.T) (*ecs.ECS, *session.Manager) {
	t.Helper()
	world := donburi.NewWorld()
	sess := session.NewManager(world, session.Options{MaxLife: 100, MaxMana: 50})
	return ecs.NewECS(world), sess
}

// press marks action as pressed this tick and released the tick before.
func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

func TestInState_SkipsSystemAfterMidTickChange(t *testing.T) {
	e, sess := newSessionECS(t)
	begin := NewBeginTick(sess)

	var mapRuns, storeRuns int
	mapSystem := InState(func(*ecs.ECS) {
		mapRuns++
		sess.ChangeGameState(cfg.StateInStore)
	}, cfg.StateInMap)
	storeSystem := InState(func(*ecs.ECS) { storeRuns++ }, cfg.StateInStore)

	tick := func() {
		begin(e)
		mapSystem(e)
		storeSystem(e)
	}

	tick()
	assert.Equal(t, 1, mapRuns)
	assert.Equal(t, 0, storeRuns, "store must wait for the next tick")
	assert.Equal(t, cfg.StateInStore, sess.GameState())

	tick()
	assert.Equal(t, 1, mapRuns)
	assert.Equal(t, 1, storeRuns)
}

func TestInState_MatchesAnyListedState(t *testing.T) {
	tests := []struct {
		name  string
		state cfg.GameState
		want  bool
	}{
		{"challenge", cfg.StateInChallenge, true},
		{"paused", cfg.StatePaused, true},
		{"map", cfg.StateInMap, false},
		{"lost", cfg.StateChallengeLost, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sess := newSessionECS(t)
			sess.ChangeGameState(tt.state)
			NewBeginTick(sess)(e)

			ran := false
			InState(func(*ecs.ECS) { ran = true }, cfg.StateInChallenge, cfg.StatePaused)(e)
			assert.Equal(t, tt.want, ran)
		})
	}
}

func TestWithPauseCheck(t *testing.T) {
	e, sess := newSessionECS(t)
	sess.StartGame()

	runs := 0
	system := WithPauseCheck(func(*ecs.ECS) { runs++ })

	system(e)
	assert.Equal(t, 1, runs)

	sess.PauseGame()
	assert.Zero(t, sess.TimeScale())
	system(e)
	assert.Equal(t, 1, runs, "frozen time skips the system")

	sess.ResumeGame()
	system(e)
	assert.Equal(t, 2, runs)
}
