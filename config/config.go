package config

import (
	"image/color"

	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi/ecs"
)

// PlayerConfig contains the player's vitals maxima
type PlayerConfig struct {
	MaxLife float64
	MaxMana float64
}

// DeckConfig contains deck composition and hand size
type DeckConfig struct {
	HandSize int
	Cards    []rules.CardConfig
}

// RoundConfig contains per-round pacing values
type RoundConfig struct {
	ManaPerRound float64 // Mana gained at the start of every new round
}

// ChallengeConfig contains the enemies a challenge node can spawn
type ChallengeConfig struct {
	Enemies map[string]rules.EnemyConfig
	Default string // Enemy used when a map node names none
}

// StoreConfig contains the store stock
type StoreConfig struct {
	Items []rules.StoreItem
}

// HUDConfig contains HUD layout and bar animation values
type HUDConfig struct {
	BarWidth     float64
	BarHeight    float64
	Margin       float64
	BarGap       float64
	LifeColor    color.RGBA
	ManaColor    color.RGBA
	BarBgColor   color.RGBA
	TextColor    color.RGBA
	TweenSeconds float32 // Time for a bar to ease to its new fill
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	Title        string
}

// ResultConfig contains victory / defeat screen configuration values
type ResultConfig struct {
	BackgroundColor color.RGBA
	VictoryColor    color.RGBA
	DefeatColor     color.RGBA
	VictoryTitle    string
	DefeatTitle     string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// BoardConfig contains card and enemy layout for the challenge view
type BoardConfig struct {
	BackgroundColor color.RGBA
	CardWidth       float64
	CardHeight      float64
	CardGap         float64
	CardColor       color.RGBA
	CardLockedColor color.RGBA
	EnemyBarWidth   float64
	EnemyColor      color.RGBA
	NodeColors      map[string]color.RGBA
	NodeVisited     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Render layers
const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Deck DeckConfig
var Round RoundConfig
var Challenge ChallengeConfig
var Store StoreConfig
var HUD HUDConfig
var Pause PauseConfig
var Result ResultConfig
var Menu MenuConfig
var Board BoardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Blue         = color.RGBA{R: 60, G: 120, B: 240, A: 255}
	BrightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 150, G: 80, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		MaxLife: 100,
		MaxMana: 50,
	}

	Deck = DeckConfig{
		HandSize: 5,
		Cards: []rules.CardConfig{
			{Name: "Strike", Cost: 5, Damage: 8, Description: "Deal 8"},
			{Name: "Strike", Cost: 5, Damage: 8, Description: "Deal 8"},
			{Name: "Strike", Cost: 5, Damage: 8, Description: "Deal 8"},
			{Name: "Strike", Cost: 5, Damage: 8, Description: "Deal 8"},
			{Name: "Heavy Blow", Cost: 15, Damage: 22, Description: "Deal 22"},
			{Name: "Heavy Blow", Cost: 15, Damage: 22, Description: "Deal 22"},
			{Name: "Focus", Cost: 0, ManaGain: 10, Description: "Gain 10 mana"},
			{Name: "Focus", Cost: 0, ManaGain: 10, Description: "Gain 10 mana"},
			{Name: "Jab", Cost: 2, Damage: 4, Description: "Deal 4"},
			{Name: "Jab", Cost: 2, Damage: 4, Description: "Deal 4"},
		},
	}

	Round = RoundConfig{
		ManaPerRound: 15,
	}

	Challenge = ChallengeConfig{
		Default: "slime",
		Enemies: map[string]rules.EnemyConfig{
			"slime":  {Name: "Slime", Life: 40, Attack: 6},
			"knight": {Name: "Knight", Life: 70, Attack: 10},
			"dragon": {Name: "Dragon", Life: 140, Attack: 16},
		},
	}

	Store = StoreConfig{
		Items: []rules.StoreItem{
			{Name: "Whetstone (double damage)", Kind: rules.ItemDoubleDamage, Cost: 20},
			{Name: "Bandage (+25 life)", Kind: rules.ItemHeal, Cost: 15, Amount: 25},
		},
	}

	HUD = HUDConfig{
		BarWidth:     130,
		BarHeight:    13,
		Margin:       10,
		BarGap:       6,
		LifeColor:    color.RGBA{R: 40, G: 220, B: 40, A: 255},
		ManaColor:    Blue,
		BarBgColor:   DarkGray,
		TextColor:    White,
		TweenSeconds: 0.35,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		Title:        "PAUSED",
	}

	Result = ResultConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 20, A: 230},
		VictoryColor:    BrightGreen,
		DefeatColor:     LightRed,
		VictoryTitle:    "CHALLENGE WON",
		DefeatTitle:     "YOU DIED",
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "DECKRUN",
		TitleY:            60,
		MenuStartY:        120,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"New Run", "Continue", "Exit"},
	}

	Board = BoardConfig{
		BackgroundColor: color.RGBA{R: 20, G: 30, B: 25, A: 255},
		CardWidth:       100,
		CardHeight:      70,
		CardGap:         10,
		CardColor:       color.RGBA{R: 70, G: 60, B: 40, A: 255},
		CardLockedColor: color.RGBA{R: 50, G: 50, B: 50, A: 255},
		EnemyBarWidth:   200,
		EnemyColor:      Red,
		NodeColors: map[string]color.RGBA{
			"challenge": Red,
			"boss":      Purple,
			"store":     Orange,
		},
		NodeVisited: Gray,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
