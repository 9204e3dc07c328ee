// Package game implements Puncher, a side-scrolling arcade action game.
// The hero moves through a scrolling world, punches and shoots alien
// invaders, collects treasures and power-ups, and advances through levels
// by reaching the goal portal. All simulation state lives in the World
// aggregate and is advanced once per fixed tick; the package has no
// dependency on the terminal platform.
package game

import "github.com/punchworks/puncher/internal/config"

// PowerKind identifies one of the six power-up kinds. The enumeration is
// closed and small, so ammo and unlock state are fixed-size tables indexed
// by PowerKind rather than open maps.
type PowerKind int

const (
	PowerFireball PowerKind = iota
	PowerGun
	PowerShield
	PowerSword
	PowerBow
	PowerLaserEyes

	NumPowerKinds
)

// String returns a human-readable name for the power kind.
func (k PowerKind) String() string {
	switch k {
	case PowerFireball:
		return "Fireball"
	case PowerGun:
		return "Gun"
	case PowerShield:
		return "Shield"
	case PowerSword:
		return "Sword"
	case PowerBow:
		return "Bow"
	case PowerLaserEyes:
		return "Laser Eyes"
	default:
		return "Unknown"
	}
}

// UsesAmmo reports whether the kind fires projectiles and consumes ammo.
// Sword and shield are melee/passive and are not usable via UsePower.
func (k PowerKind) UsesAmmo() bool {
	switch k {
	case PowerFireball, PowerGun, PowerBow, PowerLaserEyes:
		return true
	default:
		return false
	}
}

// weaponConfig returns the projectile tuning for an ammo-consuming kind.
// Returns nil for melee/passive kinds.
func (k PowerKind) weaponConfig(cfg *config.PuncherConfig) *config.WeaponConfig {
	switch k {
	case PowerFireball:
		return &cfg.Powers.Fireball
	case PowerGun:
		return &cfg.Powers.Gun
	case PowerBow:
		return &cfg.Powers.Bow
	case PowerLaserEyes:
		return &cfg.Powers.LaserEyes
	default:
		return nil
	}
}
