package game

import (
	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

// Player is the hero. Health is always clamped to [0, MaxHealth], the
// invulnerability timer never goes negative, and PunchRect is only
// meaningful while Punching is true.
type Player struct {
	Rect core.Rect

	VelX, VelY  float64
	OnGround    bool
	FacingRight bool
	Sneaking    bool

	Health      int
	MaxHealth   int
	PunchDamage int

	Punching   bool
	PunchTimer int
	PunchRect  core.Rect

	Invulnerable bool
	InvulnTimer  int

	unlocked [NumPowerKinds]bool
	ammo     [NumPowerKinds]int

	cfg *config.PuncherConfig
}

// NewPlayer creates the hero at the world start position with the
// starting loadout: sword, fireball and gun unlocked, weapons at their
// configured starting ammo.
func NewPlayer(cfg *config.PuncherConfig) *Player {
	p := &Player{
		Rect: core.NewRect(
			cfg.Player.StartX,
			cfg.World.ViewH-150,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		FacingRight: true,
		Health:      cfg.Player.MaxHealth,
		MaxHealth:   cfg.Player.MaxHealth,
		PunchDamage: cfg.Combat.PunchDamage,
		cfg:         cfg,
	}

	p.unlocked[PowerSword] = true
	p.unlocked[PowerFireball] = true
	p.unlocked[PowerGun] = true

	for k := PowerKind(0); k < NumPowerKinds; k++ {
		if w := k.weaponConfig(cfg); w != nil {
			p.ammo[k] = w.AmmoStart
		}
	}

	return p
}

// ResetPosition moves the hero back to the world start for a new level.
// Health, score-affecting stats and unlocked powers persist across levels.
func (p *Player) ResetPosition() {
	p.Rect.X = p.cfg.Player.StartX
	p.Rect.Y = p.cfg.World.ViewH - 150
	p.VelX = 0
	p.VelY = 0
}

// Update advances the hero by one tick: movement input, jump, gravity,
// ground and world-edge clamping, attack/invulnerability timers, and the
// standing/sneaking footprint swap.
func (p *Player) Update(in core.InputFrame) {
	// Horizontal movement and facing
	p.VelX = 0
	if in.Has(core.ActionLeft) {
		p.VelX = -p.cfg.Physics.MoveSpeed
		p.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		p.VelX = p.cfg.Physics.MoveSpeed
		p.FacingRight = true
	}

	// Jump only from the ground
	if in.Has(core.ActionJump) && p.OnGround {
		p.VelY = p.cfg.Physics.JumpImpulse
		p.OnGround = false
	}

	p.Sneaking = in.Has(core.ActionSneak)

	// Gravity has no terminal velocity; the ground clamp bounds the fall
	p.VelY += p.cfg.Physics.Gravity

	p.Rect.X += p.VelX
	p.Rect.Y += p.VelY

	// Ground collision
	groundTop := p.cfg.World.ViewH - p.cfg.World.GroundHeight
	if p.Rect.Bottom() >= groundTop {
		p.Rect.Y = groundTop - p.Rect.H
		p.VelY = 0
		p.OnGround = true
	}

	// Left world edge; no right clamp, the world scrolls
	if p.Rect.X < 0 {
		p.Rect.X = 0
	}

	// Punch window
	if p.Punching {
		p.PunchTimer--
		if p.PunchTimer <= 0 {
			p.PunchTimer = 0
			p.Punching = false
		}
		p.PunchRect = p.punchRect()
	}

	// Invulnerability window
	if p.Invulnerable {
		p.InvulnTimer--
		if p.InvulnTimer <= 0 {
			p.InvulnTimer = 0
			p.Invulnerable = false
		}
	}

	// Swap the footprint between standing and sneaking forms, preserving
	// the bottom and left edges so the hero does not jump when crouching.
	targetH := p.cfg.Player.Height
	if p.Sneaking {
		targetH = p.cfg.Player.SneakHeight
	}
	if p.Rect.H != targetH {
		bottom := p.Rect.Bottom()
		p.Rect.H = targetH
		p.Rect.Y = bottom - targetH
	}
}

// punchRect computes the punch hit-rectangle from the current position
// and facing.
func (p *Player) punchRect() core.Rect {
	y := p.Rect.Y + 10
	if p.FacingRight {
		return core.NewRect(p.Rect.Right()-20, y, p.cfg.Combat.PunchW, p.cfg.Combat.PunchH)
	}
	return core.NewRect(p.Rect.X-60, y, p.cfg.Combat.PunchW, p.cfg.Combat.PunchH)
}

// Punch starts a punch attack. Idempotent while a punch is already
// active: the damage window is not re-triggered or extended.
func (p *Player) Punch() {
	if p.Punching {
		return
	}
	p.Punching = true
	p.PunchTimer = p.cfg.Combat.PunchDuration
	p.PunchRect = p.punchRect()
}

// TakeDamage applies contact damage. A no-op while invulnerable;
// otherwise health floors at zero and the invulnerability window opens.
func (p *Player) TakeDamage(amount int) {
	if p.Invulnerable {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = true
	p.InvulnTimer = p.cfg.Combat.InvulnTicks
}

// AddPowerUp unlocks the kind (idempotent on the unlocked set) and applies
// its pickup effect. Ammo and stat effects apply on every pickup.
func (p *Player) AddPowerUp(kind PowerKind) {
	if kind < 0 || kind >= NumPowerKinds {
		return
	}
	p.unlocked[kind] = true

	switch kind {
	case PowerShield:
		p.MaxHealth += p.cfg.Powers.ShieldMaxHealthBonus
		p.Health += p.cfg.Powers.ShieldHeal
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
	case PowerSword:
		p.PunchDamage += p.cfg.Powers.SwordPunchBonus
	default:
		if w := kind.weaponConfig(p.cfg); w != nil {
			p.ammo[kind] += w.AmmoPickup
		}
	}
}

// UsePower fires one projectile of the given kind into the world.
// Silent no-op if the kind is locked, melee/passive, or out of ammo.
func (p *Player) UsePower(kind PowerKind, w *World) {
	if kind < 0 || kind >= NumPowerKinds || !p.unlocked[kind] {
		return
	}
	weapon := kind.weaponConfig(p.cfg)
	if weapon == nil {
		return // sword and shield have no projectile form
	}
	if p.ammo[kind] <= 0 {
		return
	}

	dir := 1.0
	startX := p.Rect.Right()
	if !p.FacingRight {
		dir = -1.0
		startX = p.Rect.X
	}
	_, centerY := p.Rect.Center()

	w.Projectiles = append(w.Projectiles, NewProjectile(startX, centerY, dir, kind, weapon))
	p.ammo[kind]--
}

// HasPower reports whether the kind has been unlocked.
func (p *Player) HasPower(kind PowerKind) bool {
	return kind >= 0 && kind < NumPowerKinds && p.unlocked[kind]
}

// Ammo returns the remaining ammo for an ammo-consuming kind, zero otherwise.
func (p *Player) Ammo(kind PowerKind) int {
	if kind < 0 || kind >= NumPowerKinds {
		return 0
	}
	return p.ammo[kind]
}
