package systems

import (
	"testing"

	cfg "github.com/automoto/deckrun/config"
	"github.com/stretchr/testify/assert"
)

type outcome struct {
	won      bool
	round    int
	complete bool
}

func TestRunRecorder_Tally(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []outcome
		want     RunRecord
	}{
		{
			name:     "single win",
			outcomes: []outcome{{won: true, round: 4}},
			want:     RunRecord{Wins: 1, BestRound: 4},
		},
		{
			name:     "best round keeps the minimum",
			outcomes: []outcome{{won: true, round: 5}, {won: true, round: 2}, {won: true, round: 3}},
			want:     RunRecord{Wins: 3, BestRound: 2},
		},
		{
			name:     "final node completes the run",
			outcomes: []outcome{{won: true, round: 3}, {won: true, round: 6, complete: true}},
			want:     RunRecord{Wins: 2, BestRound: 3, RunsCompleted: 1},
		},
		{
			name:     "losses only",
			outcomes: []outcome{{won: false, round: 2}, {won: false, round: 7}},
			want:     RunRecord{Losses: 2},
		},
		{
			name:     "mixed",
			outcomes: []outcome{{won: false}, {won: true, round: 6, complete: true}},
			want:     RunRecord{Wins: 1, Losses: 1, BestRound: 6, RunsCompleted: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := runRecord
			runRecord = RunRecord{}
			t.Cleanup(func() { runRecord = saved })

			_, sess := newSessionECS(t)
			var cur outcome
			RegisterRunRecorder(sess.World(),
				func() int { return cur.round },
				func() bool { return cur.complete })

			for _, o := range tt.outcomes {
				cur = o
				sess.StartGame()
				if o.won {
					sess.GameWon()
				} else {
					sess.GameOver()
				}
				sess.ReturnToMap()
			}

			assert.Equal(t, tt.want, CurrentRunRecord())
		})
	}
}

func TestRunRecorder_IgnoresOtherStates(t *testing.T) {
	saved := runRecord
	runRecord = RunRecord{}
	t.Cleanup(func() { runRecord = saved })

	_, sess := newSessionECS(t)
	RegisterRunRecorder(sess.World(), func() int { return 1 }, func() bool { return true })

	sess.StartGame()
	sess.PauseGame()
	sess.ResumeGame()
	sess.ChangeGameState(cfg.StateInStore)
	sess.ReturnToMap()

	assert.Equal(t, RunRecord{}, CurrentRunRecord())
}

func TestNextResolution(t *testing.T) {
	n := len(cfg.Settings.Resolutions)
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"first to second", 0, 1},
		{"last wraps", n - 1, 0},
		{"negative restarts", -1, cfg.Settings.DefaultResolutionIndex},
		{"past end restarts", n, cfg.Settings.DefaultResolutionIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextResolution(tt.index))
		})
	}
}

func TestRunRecord_Summary(t *testing.T) {
	r := RunRecord{Wins: 3, Losses: 1, RunsCompleted: 2}
	assert.Equal(t, "Wins 3   Losses 1   Runs completed 2", r.Summary())
}
