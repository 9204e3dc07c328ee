package game

import (
	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
	"github.com/punchworks/puncher/internal/registry"
)

// Mode represents the top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game drives the Puncher session state machine around a World. The World
// exists only in the playing, paused and game-over modes; the menu has none.
type Game struct {
	mode    Mode
	world   *World
	cfg     config.PuncherConfig
	runtime core.RuntimeConfig
	tick    uint64
	debug   bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom config file path for the game.
// Must be called before Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Puncher game in menu mode.
func New() *Game {
	return &Game{mode: ModeMenu}
}

func init() {
	registry.Register("puncher", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "puncher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Puncher!"
}

// Reset initializes or restarts the game, returning to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPuncher(configPath)
	if err != nil {
		cfg = config.DefaultPuncherConfig()
	}
	g.cfg = cfg

	g.mode = ModeMenu
	g.world = nil
	g.tick = 0
	g.debug = false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionStart) {
			g.startSession()
		}

	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.mode = ModePaused
			break
		}
		g.stepWorld(in)

	case ModePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionStart) {
			g.mode = ModePlaying
		}

	case ModeGameOver:
		if in.Has(core.ActionStart) {
			g.mode = ModeMenu
			g.world = nil
		}
	}

	return core.StepResult{State: g.State()}
}

// startSession begins a fresh run at level 1 with score 0.
func (g *Game) startSession() {
	seed := g.runtime.Seed
	if seed == 0 {
		seed = int64(g.tick)
	}
	g.world = NewWorld(&g.cfg, seed)
	g.mode = ModePlaying
}

// stepWorld advances one playing tick: inputs, entity updates, then
// interaction resolution.
func (g *Game) stepWorld(in core.InputFrame) {
	w := g.world

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionPunch) {
		w.Player.Punch()
	}
	for i, action := range core.PowerActions {
		if in.Has(action) {
			w.Player.UsePower(PowerKind(i), w)
		}
	}

	w.Update(in)
	w.Resolve()

	if w.Over {
		g.mode = ModeGameOver
	}
}

// World exposes the live world for rendering and tests. Nil in menu mode.
func (g *Game) World() *World {
	return g.world
}

// Mode returns the current top-level mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// DebugEnabled reports whether collision visualization is on.
func (g *Game) DebugEnabled() bool {
	return g.debug
}

// reportedLevel clamps the world level for display and persistence.
// Beating the final level leaves World.Level one past it; every outward
// surface (HUD, saved runs, scores) reports the final level instead.
func (g *Game) reportedLevel() int {
	lvl := g.world.Level
	if lvl > g.cfg.World.FinalLevel {
		lvl = g.cfg.World.FinalLevel
	}
	return lvl
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Paused:   g.mode == ModePaused,
		GameOver: g.mode == ModeGameOver,
	}
	if g.world != nil {
		s.Score = g.world.Score
		s.Level = g.reportedLevel()
		s.Victory = g.world.Victory
	}
	return s
}
