package game

import (
	"math/rand"

	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

// Enemy is an alien invader. Stats scale linearly with the level it was
// spawned for; health only decreases and the resolver removes the enemy
// in the same tick its health crosses zero.
type Enemy struct {
	Rect core.Rect

	Health    int
	MaxHealth int
	Damage    int
	Speed     float64
	Points    int

	moveTimer int
	moveDir   float64

	// HitFlash is a cosmetic countdown; the renderer tints the alien while
	// it is positive. It has no gameplay effect.
	HitFlash int

	cfg *config.PuncherConfig
}

// NewEnemy spawns an alien at (x, y) with stats for the given 1-indexed
// level: each stat is base + level*step.
func NewEnemy(x, y float64, level int, cfg *config.PuncherConfig, rng *rand.Rand) *Enemy {
	health := cfg.Enemies.HealthBase + level*cfg.Enemies.HealthStep
	return &Enemy{
		Rect:      core.NewRect(x, y, cfg.Enemies.Width, cfg.Enemies.Height),
		Health:    health,
		MaxHealth: health,
		Damage:    cfg.Enemies.DamageBase + level*cfg.Enemies.DamageStep,
		Speed:     cfg.Enemies.SpeedBase + float64(level)*cfg.Enemies.SpeedStep,
		Points:    cfg.Enemies.PointsBase + level*cfg.Enemies.PointsStep,
		moveDir:   patrolDir(rng),
		cfg:       cfg,
	}
}

// patrolDir picks a patrol direction uniformly from {-1, +1}.
func patrolDir(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Update advances the patrol AI by one tick: periodic direction re-roll,
// horizontal movement, ground clamping, and the hit-flash countdown.
func (e *Enemy) Update(rng *rand.Rand) {
	e.moveTimer++
	if e.moveTimer > e.cfg.Enemies.PatrolEvery {
		e.moveDir = patrolDir(rng)
		e.moveTimer = 0
	}

	e.Rect.X += e.moveDir * e.Speed

	groundTop := e.cfg.World.ViewH - e.cfg.World.GroundHeight
	if e.Rect.Bottom() >= groundTop {
		e.Rect.Y = groundTop - e.Rect.H
	}

	if e.HitFlash > 0 {
		e.HitFlash--
	}
}

// TakeDamage reduces health and starts the hit flash. Health may go
// negative; the resolver removes the enemy when it reaches zero or below.
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
	e.HitFlash = e.cfg.Enemies.HitFlash
}
