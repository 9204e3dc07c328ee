package game

// Snapshot captures the observable session state for determinism testing
// and for the HUD. Entity positions are reduced to the hero and counts;
// two sessions stepped with identical seeds and inputs must produce
// identical snapshots at every tick.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Score   int
	Level   int
	Victory bool

	PlayerX     float64
	PlayerY     float64
	Health      int
	MaxHealth   int
	CameraX     float64
	Enemies     int
	Treasures   int
	PowerUps    int
	Projectiles int
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick: g.tick,
		Mode: g.mode,
	}
	if w := g.world; w != nil {
		s.Score = w.Score
		s.Level = g.reportedLevel()
		s.Victory = w.Victory
		s.PlayerX = w.Player.Rect.X
		s.PlayerY = w.Player.Rect.Y
		s.Health = w.Player.Health
		s.MaxHealth = w.Player.MaxHealth
		s.CameraX = w.CameraX
		s.Enemies = len(w.Enemies)
		s.Treasures = len(w.Treasures)
		s.PowerUps = len(w.PowerUps)
		s.Projectiles = len(w.Projectiles)
	}
	return s
}

// PowerSlot describes one entry in the HUD power list.
type PowerSlot struct {
	Kind     PowerKind
	Hotkey   int  // 1-indexed hotkey digit
	Unlocked bool
	Ammo     int  // -1 for melee powers
}

// PowerSlots returns the six HUD power entries in hotkey order.
// Returns nil when no session is active.
func (g *Game) PowerSlots() []PowerSlot {
	if g.world == nil {
		return nil
	}
	slots := make([]PowerSlot, NumPowerKinds)
	for i := range slots {
		kind := PowerKind(i)
		slots[i] = PowerSlot{
			Kind:     kind,
			Hotkey:   i + 1,
			Unlocked: g.world.Player.HasPower(kind),
			Ammo:     -1,
		}
		if kind.UsesAmmo() {
			slots[i].Ammo = g.world.Player.Ammo(kind)
		}
	}
	return slots
}
