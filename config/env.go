package config

import (
	"fmt"

	"github.com/automoto/deckrun/shared/rules"
	"github.com/caarlos0/env/v11"
)

// EnvOverrides lists the tuning values that can be set from the environment.
// Fields left unset in the environment keep their compiled-in defaults.
type EnvOverrides struct {
	MaxLife      float64 `env:"MAX_LIFE"`
	MaxMana      float64 `env:"MAX_MANA"`
	HandSize     int     `env:"HAND_SIZE"`
	ManaPerRound float64 `env:"MANA_PER_ROUND"`
	SkipMenu     bool    `env:"SKIP_MENU"`
	Width        int     `env:"WIDTH"`
	Height       int     `env:"HEIGHT"`
}

// EnvPrefix is prepended to every override variable name.
const EnvPrefix = "DECKRUN_"

// LoadEnv applies DECKRUN_* environment overrides to the global configuration.
func LoadEnv() error {
	o := EnvOverrides{
		MaxLife:      Player.MaxLife,
		MaxMana:      Player.MaxMana,
		HandSize:     Deck.HandSize,
		ManaPerRound: Round.ManaPerRound,
		SkipMenu:     Debug.SkipMenu,
		Width:        C.Width,
		Height:       C.Height,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment overrides: %w", err)
	}
	if o.MaxLife <= 0 || o.MaxMana <= 0 {
		return fmt.Errorf("vitals maxima must be positive (life=%v, mana=%v)", o.MaxLife, o.MaxMana)
	}
	if o.HandSize <= 0 || o.HandSize > len(rules.CardActions) {
		return fmt.Errorf("hand size %d out of range 1..%d", o.HandSize, len(rules.CardActions))
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("screen size must be positive (width=%d, height=%d)", o.Width, o.Height)
	}

	Player.MaxLife = o.MaxLife
	Player.MaxMana = o.MaxMana
	Deck.HandSize = o.HandSize
	Round.ManaPerRound = o.ManaPerRound
	Debug.SkipMenu = o.SkipMenu
	C.Width = o.Width
	C.Height = o.Height
	return nil
}
