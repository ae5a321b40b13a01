// Package session tracks the player's vitals and the coarse game state for the
// whole process. A single Manager is created at startup and handed to every
// scene; it outlives scene changes.
//
// Every operation is infallible: numeric input is clamped, never rejected, and
// missing collaborators or displays are skipped. Display code observes the
// session through the VitalsChanged, StateChanged and ScreenChanged events.
package session

import (
	"math"
	"strconv"

	"github.com/automoto/deckrun/archetypes"
	"github.com/automoto/deckrun/components"
	"github.com/automoto/deckrun/shared/rules"
	"github.com/yohamta/donburi"
)

// Options configures a Manager. Nil collaborators are allowed.
type Options struct {
	MaxLife   float64
	MaxMana   float64
	Deck      DeckManager
	Rounds    RoundManager
	Navigator Navigator
	Quitter   Quitter
}

type Manager struct {
	world donburi.World
	entry *donburi.Entry

	deck      DeckManager
	rounds    RoundManager
	navigator Navigator
	quitter   Quitter
}

// NewManager creates the session entity in world and runs the start routine:
// vitals are filled, the pause screen is hidden and the state is InMap.
func NewManager(world donburi.World, opts Options) *Manager {
	m := &Manager{
		world:     world,
		entry:     archetypes.Session.Spawn(world),
		deck:      opts.Deck,
		rounds:    opts.Rounds,
		navigator: opts.Navigator,
		quitter:   opts.Quitter,
	}

	components.Vitals.SetValue(m.entry, components.VitalsData{
		MaxLife: math.Max(opts.MaxLife, 0),
		MaxMana: math.Max(opts.MaxMana, 0),
	})
	components.Session.SetValue(m.entry, components.SessionData{
		State:     rules.InMap,
		TimeScale: 1,
	})
	components.Pause.SetValue(m.entry, components.PauseData{SelectedOption: components.MenuResume})

	m.ResetVitals()
	return m
}

// World returns the persistent world the session lives in.
func (m *Manager) World() donburi.World { return m.world }

// SetCollaborators replaces the deck and round collaborators. Used when they
// are built after the manager.
func (m *Manager) SetCollaborators(deck DeckManager, rounds RoundManager) {
	m.deck = deck
	m.rounds = rounds
}

// SetNavigator replaces the scene navigator and process control.
func (m *Manager) SetNavigator(nav Navigator, quitter Quitter) {
	m.navigator = nav
	m.quitter = quitter
}

func (m *Manager) vitals() *components.VitalsData   { return components.Vitals.Get(m.entry) }
func (m *Manager) session() *components.SessionData { return components.Session.Get(m.entry) }
func (m *Manager) pause() *components.PauseData     { return components.Pause.Get(m.entry) }
func (m *Manager) screens() *components.ScreensData { return components.Screens.Get(m.entry) }

// ResetVitals refills life and mana, refreshes the display and hides the
// pause screen. It is the start routine of a new run.
func (m *Manager) ResetVitals() {
	v := m.vitals()
	v.Life = v.MaxLife
	v.Mana = v.MaxMana
	m.RefreshUI()
	m.setScreen(components.ScreenPauseMenu, false)
}

// Update is the per-tick hook: the pause action toggles pause.
func (m *Manager) Update(in Input) {
	if in == nil || !in.JustPressed(rules.ActionPause) {
		return
	}
	if m.IsPaused() {
		m.ResumeGame()
	} else {
		m.PauseGame()
	}
}

// StartGame enters a challenge and resets the deck and round counter.
// Vitals are left untouched.
func (m *Manager) StartGame() {
	m.ChangeGameState(rules.InChallenge)
	if m.deck != nil {
		m.deck.ShuffleCards()
		m.deck.StartDeck()
	}
	if m.rounds != nil {
		m.rounds.ResetRounds()
	}
}

// PauseGame freezes time, shows the pause overlay and enters Paused.
func (m *Manager) PauseGame() {
	m.setScreen(components.ScreenPauseMenu, true)
	p := m.pause()
	p.IsPaused = true
	p.SelectedOption = components.MenuResume
	m.session().TimeScale = 0
	m.ChangeGameState(rules.Paused)
}

// ResumeGame unfreezes time and hides the pause overlay. The state always
// returns to InChallenge, whatever it was before pausing.
func (m *Manager) ResumeGame() {
	m.setScreen(components.ScreenPauseMenu, false)
	m.pause().IsPaused = false
	m.session().TimeScale = 1
	m.ChangeGameState(rules.InChallenge)
}

// ChangeGameState overwrites the state. Every transition is allowed.
func (m *Manager) ChangeGameState(state rules.GameState) {
	s := m.session()
	prev := s.State
	s.State = state
	if prev == state {
		return
	}
	StateChanged.Publish(m.world, StateEvent{From: prev, To: state})
	StateChanged.ProcessEvents(m.world)
}

// GameOver enters ChallengeLost and shows the loss screen.
func (m *Manager) GameOver() {
	m.ChangeGameState(rules.ChallengeLost)
	m.setScreen(components.ScreenGameOver, true)
}

// GameWon enters ChallengeWon and shows the victory screen.
func (m *Manager) GameWon() {
	m.ChangeGameState(rules.ChallengeWon)
	m.setScreen(components.ScreenVictory, true)
}

// TryAgain hides the result and pause screens and starts the challenge again.
// Life and mana carry over from the previous attempt; call ResetVitals for a
// fresh run.
func (m *Manager) TryAgain() {
	m.setScreen(components.ScreenGameOver, false)
	m.setScreen(components.ScreenPauseMenu, false)
	m.setScreen(components.ScreenVictory, false)
	m.pause().IsPaused = false
	m.session().TimeScale = 1
	m.StartGame()
}

// ReturnToMap hides the result screens and goes back to choosing a node.
func (m *Manager) ReturnToMap() {
	m.setScreen(components.ScreenGameOver, false)
	m.setScreen(components.ScreenVictory, false)
	m.ChangeGameState(rules.InMap)
}

func (m *Manager) GoToGame() { m.loadScene(rules.SceneMainGame) }
func (m *Manager) GoToMenu() { m.loadScene(rules.SceneMenu) }

func (m *Manager) loadScene(name string) {
	if m.navigator != nil {
		m.navigator.LoadScene(name)
	}
}

func (m *Manager) QuitGame() {
	if m.quitter != nil {
		m.quitter.Quit()
	}
}

// TakeDamage removes life. Reaching zero ends the challenge as lost.
func (m *Manager) TakeDamage(amount float64) {
	v := m.vitals()
	v.Life -= amount
	if v.Life <= 0 || math.IsNaN(v.Life) {
		v.Life = 0
		m.GameOver()
	} else if v.Life > v.MaxLife {
		v.Life = v.MaxLife
	}
	m.RefreshUI()
}

// Heal restores life up to the maximum.
func (m *Manager) Heal(amount float64) {
	v := m.vitals()
	v.Life = clamp(v.Life+amount, v.MaxLife)
	m.RefreshUI()
}

func (m *Manager) GainMana(amount float64) {
	v := m.vitals()
	v.Mana = clamp(v.Mana+amount, v.MaxMana)
	m.RefreshUI()
}

// ConsumeMana spends mana, bottoming out at zero. Callers check
// affordability first; this never refuses.
func (m *Manager) ConsumeMana(amount float64) {
	v := m.vitals()
	v.Mana = clamp(v.Mana-amount, v.MaxMana)
	m.RefreshUI()
}

// RefreshUI publishes the current vitals to any display subscribed to
// VitalsChanged. With no subscribers it does nothing.
func (m *Manager) RefreshUI() {
	v := m.vitals()
	VitalsChanged.Publish(m.world, VitalsEvent{
		Life:     v.Life,
		MaxLife:  v.MaxLife,
		Mana:     v.Mana,
		MaxMana:  v.MaxMana,
		LifeText: FormatValue(v.Life),
		ManaText: FormatValue(v.Mana),
		LifeFill: FillRatio(v.Life, v.MaxLife),
		ManaFill: FillRatio(v.Mana, v.MaxMana),
	})
	VitalsChanged.ProcessEvents(m.world)
}

func (m *Manager) setScreen(id components.ScreenID, active bool) {
	if !m.screens().Set(id, active) {
		return
	}
	ScreenChanged.Publish(m.world, ScreenEvent{Screen: id, Active: active})
	ScreenChanged.ProcessEvents(m.world)
}

func (m *Manager) GameState() rules.GameState { return m.session().State }
func (m *Manager) PlayerLife() float64        { return m.vitals().Life }
func (m *Manager) PlayerMana() float64        { return m.vitals().Mana }
func (m *Manager) MaxLife() float64           { return m.vitals().MaxLife }
func (m *Manager) MaxMana() float64           { return m.vitals().MaxMana }
func (m *Manager) IsPaused() bool             { return m.pause().IsPaused }
func (m *Manager) TimeScale() float64         { return m.session().TimeScale }

// PauseMenu exposes the pause menu selection for the overlay.
func (m *Manager) PauseMenu() *components.PauseData { return m.pause() }

// ScreenActive reports whether an overlay is currently shown.
func (m *Manager) ScreenActive(id components.ScreenID) bool {
	return m.screens().Active(id)
}

// DoubleDamageNextAttack is consumed by combat; the session only stores it.
func (m *Manager) DoubleDamageNextAttack() bool { return m.session().DoubleDamageNextAttack }

func (m *Manager) SetDoubleDamageNextAttack(v bool) {
	m.session().DoubleDamageNextAttack = v
}

// FormatValue renders a vitals value the way the HUD shows it: the shortest
// decimal form, no padding or rounding.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FillRatio normalizes value against max into [0,1]. A non-positive max
// yields 0.
func FillRatio(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp(value/max, 1)
}

func clamp(v, max float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
