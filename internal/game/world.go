package game

import (
	"math/rand"

	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

// World is the single aggregate owning all live entities and session
// progress. It is passed explicitly into update and resolve logic each
// tick; there are no globals. Entities hold no references to each other;
// all interactions are computed by the resolver over this aggregate.
type World struct {
	Level   int
	Score   int
	CameraX float64

	Player      *Player
	Enemies     []*Enemy
	Treasures   []*Treasure
	PowerUps    []*PowerUp
	Projectiles []*Projectile
	Goal        *Goal

	// Over and Victory are set by the resolver: Over on defeat or after
	// beating the final level, Victory only in the latter case.
	Over    bool
	Victory bool

	cfg *config.PuncherConfig
	rng *rand.Rand
}

// NewWorld creates a fresh session at level 1 with a seeded RNG and
// generates the first level's content.
func NewWorld(cfg *config.PuncherConfig, seed int64) *World {
	w := &World{
		Level:  1,
		Player: NewPlayer(cfg),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.GenerateLevel()
	return w
}

// Update advances every live entity by one tick, then tracks the camera.
// Interaction resolution happens separately in Resolve.
func (w *World) Update(in core.InputFrame) {
	w.Player.Update(in)

	for _, e := range w.Enemies {
		e.Update(w.rng)
	}
	for _, t := range w.Treasures {
		t.Update()
	}
	for _, p := range w.PowerUps {
		p.Update()
	}

	// Projectiles self-remove once fully outside the viewport.
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Update()
		if !p.Expired(w.CameraX, w.cfg.World.ViewW) {
			kept = append(kept, p)
		}
	}
	w.Projectiles = kept

	if w.Goal != nil {
		w.Goal.Update()
	}

	w.updateCamera()
}

// updateCamera tracks the hero, keeping them a third of the viewport from
// the left edge, clamped to the world bounds.
func (w *World) updateCamera() {
	target := w.Player.Rect.X - w.cfg.World.ViewW/3
	w.CameraX = core.ClampF(target, 0, w.cfg.World.Width-w.cfg.World.ViewW)
}
