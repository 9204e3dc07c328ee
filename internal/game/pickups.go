package game

import (
	"math"

	"github.com/punchworks/puncher/internal/core"
)

// Treasure is a collectible gem. Immutable once spawned except removal on
// pickup; the vertical bob is purely cosmetic.
type Treasure struct {
	Rect   core.Rect
	Points int

	baseY float64
	phase float64
}

// Treasure and power-up footprints in world units.
const (
	treasureSize = 30
	powerUpSize  = 50
)

// Bob animation tuning.
const (
	treasureBobStep = 0.2
	treasureBobAmp  = 5
	powerUpBobStep  = 0.15
	powerUpBobAmp   = 8
	goalPulseStep   = 0.2
)

// NewTreasure spawns a gem worth the given points at (x, y).
func NewTreasure(x, y float64, points int) *Treasure {
	return &Treasure{
		Rect:   core.NewRect(x, y, treasureSize, treasureSize),
		Points: points,
		baseY:  y,
	}
}

// Update advances the bob animation by one tick.
func (t *Treasure) Update() {
	t.phase += treasureBobStep
	t.Rect.Y = t.baseY + math.Sin(t.phase)*treasureBobAmp
}

// PowerUp is a floating pickup carrying one power kind.
type PowerUp struct {
	Rect core.Rect
	Kind PowerKind

	baseY float64
	phase float64
}

// NewPowerUp spawns a power-up of the given kind at (x, y).
func NewPowerUp(x, y float64, kind PowerKind) *PowerUp {
	return &PowerUp{
		Rect:  core.NewRect(x, y, powerUpSize, powerUpSize),
		Kind:  kind,
		baseY: y,
	}
}

// Update advances the float animation by one tick.
func (p *PowerUp) Update() {
	p.phase += powerUpBobStep
	p.Rect.Y = p.baseY + math.Sin(p.phase)*powerUpBobAmp
}

// Goal is the level exit portal. One per level; recreated on level advance.
type Goal struct {
	Rect  core.Rect
	phase float64
}

// Goal footprint in world units.
const (
	goalW = 100
	goalH = 150
)

// NewGoal places the portal at (x, y).
func NewGoal(x, y float64) *Goal {
	return &Goal{Rect: core.NewRect(x, y, goalW, goalH)}
}

// Update advances the pulsing-glow animation by one tick.
func (g *Goal) Update() {
	g.phase += goalPulseStep
}

// Glow returns the current pulse intensity in [0, 1], for the renderer.
func (g *Goal) Glow() float64 {
	return 0.5 + 0.5*math.Sin(g.phase)
}
