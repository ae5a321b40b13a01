package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/deckrun/config"
	"github.com/automoto/deckrun/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsKey  = "settings"
	runRecordKey = "runs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// RunRecord is the player's lifetime tally, stored on disk.
type RunRecord struct {
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	BestRound     int `json:"bestRound"` // Fewest rounds a challenge was won in (0 = none yet)
	RunsCompleted int `json:"runsCompleted"`
}

func (r RunRecord) Summary() string {
	return fmt.Sprintf("Wins %d   Losses %d   Runs completed %d", r.Wins, r.Losses, r.RunsCompleted)
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var runRecord RunRecord
var currentSettings = SavedSettings{ResolutionIndex: cfg.Settings.DefaultResolutionIndex}

// InitPersistence initializes the gdata manager and loads the run record
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true

	if err := loadItem(runRecordKey, &runRecord); err != nil {
		log.Printf("Warning: Could not load run record: %v", err)
	}
	return nil
}

// loadItem decodes a stored JSON item into v. A missing item leaves v as is.
func loadItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads settings from disk. Nil means nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings *SavedSettings
	if err := loadItem(settingsKey, &settings); err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, err
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if err := saveItem(settingsKey, s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the window.
// Used during startup before scenes are created.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	currentSettings = *saved

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// UpdateDisplaySettings toggles fullscreen on ActionFullscreen, cycles the
// window resolution on ActionResolution and saves either change.
func UpdateDisplaySettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	switch {
	case input.JustPressed(cfg.ActionFullscreen):
		currentSettings.Fullscreen = !currentSettings.Fullscreen
		ebiten.SetFullscreen(currentSettings.Fullscreen)
	case input.JustPressed(cfg.ActionResolution):
		currentSettings.ResolutionIndex = nextResolution(currentSettings.ResolutionIndex)
		if !currentSettings.Fullscreen {
			res := cfg.Settings.Resolutions[currentSettings.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	default:
		return
	}
	_ = SaveSettings(&currentSettings)
}

// nextResolution steps to the following entry of cfg.Settings.Resolutions.
// Out-of-range indexes restart from the default.
func nextResolution(index int) int {
	n := len(cfg.Settings.Resolutions)
	if index < 0 || index >= n {
		return cfg.Settings.DefaultResolutionIndex
	}
	return (index + 1) % n
}

// CurrentRunRecord returns the tally as last recorded.
func CurrentRunRecord() RunRecord { return runRecord }

// RegisterRunRecorder tallies challenge outcomes into the run record.
// round reports the round the challenge ended in; complete reports whether
// the node just cleared ends the run.
func RegisterRunRecorder(world donburi.World, round func() int, complete func() bool) {
	session.StateChanged.Subscribe(world, func(w donburi.World, ev session.StateEvent) {
		switch ev.To {
		case cfg.StateChallengeWon:
			runRecord.Wins++
			if r := round(); runRecord.BestRound == 0 || r < runRecord.BestRound {
				runRecord.BestRound = r
			}
			if complete() {
				runRecord.RunsCompleted++
			}
		case cfg.StateChallengeLost:
			runRecord.Losses++
		default:
			return
		}
		if err := saveItem(runRecordKey, runRecord); err != nil {
			log.Printf("Warning: Could not save run record: %v", err)
		}
	})
}
