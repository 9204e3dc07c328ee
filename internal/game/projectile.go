package game

import (
	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

// Projectile is a fired power: fireball, bullet, arrow or laser beam.
// Kind is a visual tag only; damage and speed are fixed at spawn.
type Projectile struct {
	Rect   core.Rect
	Dir    float64 // +1 right, -1 left
	Speed  float64
	Damage int
	Kind   PowerKind
}

// projectileSize returns the footprint for a projectile kind.
func projectileSize(kind PowerKind) (w, h float64) {
	switch kind {
	case PowerFireball:
		return 20, 20
	case PowerLaserEyes:
		return 25, 8
	case PowerBow:
		return 15, 3
	default: // bullet
		return 8, 4
	}
}

// NewProjectile spawns a projectile at (x, centerY) traveling in dir.
func NewProjectile(x, centerY, dir float64, kind PowerKind, weapon *config.WeaponConfig) *Projectile {
	w, h := projectileSize(kind)
	return &Projectile{
		Rect:   core.NewRect(x, centerY-h/2, w, h),
		Dir:    dir,
		Speed:  weapon.Speed,
		Damage: weapon.Damage,
		Kind:   kind,
	}
}

// Update advances the projectile by one tick.
func (p *Projectile) Update() {
	p.Rect.X += p.Dir * p.Speed
}

// Expired reports whether the projectile has fully left the visible
// viewport. The test is in screen space (camera-relative), not world
// space, unlike the distance-based cleanup of other entities.
func (p *Projectile) Expired(cameraX, viewW float64) bool {
	screenX := p.Rect.X - cameraX
	return screenX+p.Rect.W < 0 || screenX > viewW
}
