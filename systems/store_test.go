package systems

import (
	"testing"

	"github.com/automoto/deckrun/battle"
	cfg "github.com/automoto/deckrun/config"
	"github.com/stretchr/testify/assert"
)

func TestUpdateStore_LeaveKeys(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
	}{
		{"enter", cfg.ActionMenuSelect},
		{"backspace", cfg.ActionMenuBack},
		{"escape", cfg.ActionPause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sess := newSessionECS(t)
			store := battle.NewStore(sess, cfg.Store.Items)
			store.Enter()

			press(e, tt.action)
			NewUpdateStore(sess, store)(e)

			assert.Equal(t, cfg.StateInMap, sess.GameState())
			assert.False(t, sess.IsPaused())
		})
	}
}

func TestUpdateStore_IgnoredOutsideStore(t *testing.T) {
	e, sess := newSessionECS(t)
	store := battle.NewStore(sess, cfg.Store.Items)
	sess.StartGame()

	press(e, cfg.ActionPause)
	NewUpdateStore(sess, store)(e)

	assert.Equal(t, cfg.StateInChallenge, sess.GameState())
}
