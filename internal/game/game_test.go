package game

import (
	"testing"

	"github.com/punchworks/puncher/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func startedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(seed))

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v after start, want playing", g.Mode())
	}
	return g
}

func TestStartsInMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.Mode() != ModeMenu {
		t.Fatalf("mode = %v, want menu", g.Mode())
	}
	if g.World() != nil {
		t.Error("world exists in menu mode")
	}

	// Ticks in the menu without a start press change nothing
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.Mode() != ModeMenu {
		t.Error("left menu without a start press")
	}
}

func TestStartBeginsSession(t *testing.T) {
	g := startedGame(t, 42)

	w := g.World()
	if w == nil {
		t.Fatal("no world after start")
	}
	if w.Level != 1 || w.Score != 0 {
		t.Errorf("fresh session at level %d score %d, want 1/0", w.Level, w.Score)
	}
}

func TestPauseToggle(t *testing.T) {
	g := startedGame(t, 42)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.Mode() != ModePaused {
		t.Fatalf("mode = %v after pause, want paused", g.Mode())
	}
	if !g.State().Paused {
		t.Error("State().Paused = false while paused")
	}

	// The world must not advance while paused
	x := g.World().Player.Rect.X
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.World().Player.Rect.X != x {
		t.Error("world advanced while paused")
	}

	g.Step(pause)
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v after unpause, want playing", g.Mode())
	}
}

func TestGameOverToMenu(t *testing.T) {
	g := startedGame(t, 42)

	// Force a defeat
	g.World().Player.Health = 0
	empty := core.NewInputFrame()
	g.Step(empty)

	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v with zero health, want game over", g.Mode())
	}
	state := g.State()
	if !state.GameOver || state.Victory {
		t.Errorf("state = %+v, want GameOver without Victory", state)
	}

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	if g.Mode() != ModeMenu {
		t.Fatalf("mode = %v after acknowledging game over, want menu", g.Mode())
	}
	if g.World() != nil {
		t.Error("world kept after returning to menu")
	}

	// A new session starts fresh
	g.Step(start)
	w := g.World()
	if w == nil || w.Level != 1 || w.Score != 0 {
		t.Error("restarted session did not reset level and score")
	}
}

func TestVictoryState(t *testing.T) {
	g := startedGame(t, 42)
	w := g.World()

	// Walk the hero onto the final portal
	w.Level = 5
	w.Player.Rect.X = w.Goal.Rect.X
	w.Player.Rect.Y = w.Goal.Rect.Y

	empty := core.NewInputFrame()
	g.Step(empty)

	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v after final goal, want game over", g.Mode())
	}
	if !g.State().Victory {
		t.Error("victory flag not set after beating the final level")
	}

	// World.Level is one past the final level internally; the reported
	// level never exceeds the final level.
	if got := g.State().Level; got != 5 {
		t.Errorf("reported level = %d after victory, want 5", got)
	}
	if got := g.Snapshot().Level; got != 5 {
		t.Errorf("snapshot level = %d after victory, want 5", got)
	}
}

func TestDebugToggle(t *testing.T) {
	g := startedGame(t, 42)

	debug := core.NewInputFrame()
	debug.Set(core.ActionDebug)
	g.Step(debug)
	if !g.DebugEnabled() {
		t.Fatal("debug not enabled after toggle")
	}
	g.Step(debug)
	if g.DebugEnabled() {
		t.Error("debug not disabled after second toggle")
	}
}

func TestPunchActionStartsPunch(t *testing.T) {
	g := startedGame(t, 42)

	punch := core.NewInputFrame()
	punch.Set(core.ActionPunch)
	g.Step(punch)

	if !g.World().Player.Punching {
		t.Error("punch action did not start a punch")
	}
}

func TestPowerHotkeyFires(t *testing.T) {
	g := startedGame(t, 42)
	w := g.World()
	w.Projectiles = nil
	before := w.Player.Ammo(PowerFireball)

	fire := core.NewInputFrame()
	fire.Set(core.ActionPower1)
	g.Step(fire)

	if got := w.Player.Ammo(PowerFireball); got != before-1 {
		t.Errorf("fireball ammo = %d, want %d", got, before-1)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))

		input := core.NewInputFrame()
		input.Set(core.ActionStart)
		g.Step(input)

		for i := 0; i < 300; i++ {
			input.Clear()
			if i%3 != 0 {
				input.Set(core.ActionRight)
			}
			if i == 30 || i == 90 {
				input.Set(core.ActionJump)
			}
			if i == 50 {
				input.Set(core.ActionPunch)
			}
			if i == 120 {
				input.Set(core.ActionPower2)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	screen := core.NewScreen(80, 24)
	g.Render(screen) // menu

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)
	g.Render(screen) // playing

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	g.Render(screen) // paused

	g.Step(pause)
	g.World().Player.Health = 0
	g.Step(core.NewInputFrame())
	g.Render(screen) // game over

	// Tiny screens must clip, not panic
	tiny := core.NewScreen(3, 2)
	g.Render(tiny)
}
