package game

import (
	"testing"

	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

func newTestPlayer() (*Player, *config.PuncherConfig) {
	cfg := config.DefaultPuncherConfig()
	return NewPlayer(&cfg), &cfg
}

func TestStartingLoadout(t *testing.T) {
	p, _ := newTestPlayer()

	for _, kind := range []PowerKind{PowerSword, PowerFireball, PowerGun} {
		if !p.HasPower(kind) {
			t.Errorf("%s should be unlocked at start", kind)
		}
	}
	for _, kind := range []PowerKind{PowerShield, PowerBow, PowerLaserEyes} {
		if p.HasPower(kind) {
			t.Errorf("%s should be locked at start", kind)
		}
	}

	if got := p.Ammo(PowerFireball); got != 10 {
		t.Errorf("fireball ammo = %d, want 10", got)
	}
	if got := p.Ammo(PowerGun); got != 20 {
		t.Errorf("gun ammo = %d, want 20", got)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	p, _ := newTestPlayer()

	// Let the hero fall onto the ground first
	empty := core.NewInputFrame()
	for i := 0; i < 60 && !p.OnGround; i++ {
		p.Update(empty)
	}
	if !p.OnGround {
		t.Fatal("player never landed")
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	p.Update(jump)

	if p.OnGround {
		t.Fatal("player still grounded after jump")
	}
	risingVel := p.VelY
	if risingVel >= 0 {
		t.Fatalf("vertical velocity = %v after jump, want negative (up)", risingVel)
	}

	// A second jump press mid-air must not re-launch: only gravity applies
	p.Update(jump)
	if p.VelY != risingVel+p.cfg.Physics.Gravity {
		t.Errorf("air jump changed velocity to %v, want %v", p.VelY, risingVel+p.cfg.Physics.Gravity)
	}

	// Gravity eventually brings the hero back down to the ground line
	for i := 0; i < 120 && !p.OnGround; i++ {
		p.Update(empty)
	}
	if !p.OnGround {
		t.Fatal("player never landed after jump")
	}
	groundTop := p.cfg.World.ViewH - p.cfg.World.GroundHeight
	if p.Rect.Bottom() != groundTop {
		t.Errorf("player bottom = %v, want %v", p.Rect.Bottom(), groundTop)
	}
}

func TestSneakSwapsFootprint(t *testing.T) {
	p, _ := newTestPlayer()

	empty := core.NewInputFrame()
	for i := 0; i < 60 && !p.OnGround; i++ {
		p.Update(empty)
	}
	bottom := p.Rect.Bottom()

	sneak := core.NewInputFrame()
	sneak.Set(core.ActionSneak)
	p.Update(sneak)

	if p.Rect.H != p.cfg.Player.SneakHeight {
		t.Errorf("sneaking height = %v, want %v", p.Rect.H, p.cfg.Player.SneakHeight)
	}
	if p.Rect.Bottom() != bottom {
		t.Errorf("bottom edge moved while crouching: %v, want %v", p.Rect.Bottom(), bottom)
	}

	p.Update(empty)
	if p.Rect.H != p.cfg.Player.Height {
		t.Errorf("standing height = %v, want %v", p.Rect.H, p.cfg.Player.Height)
	}
	if p.Rect.Bottom() != bottom {
		t.Errorf("bottom edge moved while standing up: %v", p.Rect.Bottom())
	}
}

func TestLeftWorldEdgeClamp(t *testing.T) {
	p, _ := newTestPlayer()

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		p.Update(left)
	}

	if p.Rect.X != 0 {
		t.Errorf("player x = %v, want clamped to 0", p.Rect.X)
	}
}

func TestTakeDamageAndInvulnerability(t *testing.T) {
	p, _ := newTestPlayer()

	p.TakeDamage(30)
	if p.Health != 70 {
		t.Fatalf("health = %d, want 70", p.Health)
	}
	if !p.Invulnerable || p.InvulnTimer != p.cfg.Combat.InvulnTicks {
		t.Fatalf("invulnerability window not opened: %v/%d", p.Invulnerable, p.InvulnTimer)
	}

	// Damage during the window is ignored entirely
	p.TakeDamage(50)
	if p.Health != 70 {
		t.Errorf("health = %d during invulnerability, want 70", p.Health)
	}

	// Window expires after the configured number of ticks
	empty := core.NewInputFrame()
	for i := 0; i < p.cfg.Combat.InvulnTicks; i++ {
		p.Update(empty)
	}
	if p.Invulnerable {
		t.Error("still invulnerable after the window elapsed")
	}

	// Health floors at zero
	p.TakeDamage(1000)
	if p.Health != 0 {
		t.Errorf("health = %d after massive hit, want 0", p.Health)
	}
}

func TestPunchWindow(t *testing.T) {
	p, _ := newTestPlayer()

	p.Punch()
	if !p.Punching || p.PunchTimer != p.cfg.Combat.PunchDuration {
		t.Fatalf("punch not started: %v/%d", p.Punching, p.PunchTimer)
	}

	// Re-triggering mid-punch must not extend the window
	p.PunchTimer = 3
	p.Punch()
	if p.PunchTimer != 3 {
		t.Errorf("punch timer extended to %d by re-trigger", p.PunchTimer)
	}

	empty := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		p.Update(empty)
	}
	if p.Punching {
		t.Error("punch still active after window elapsed")
	}
}

func TestPunchRectFollowsFacing(t *testing.T) {
	p, _ := newTestPlayer()

	p.Punch()
	if p.PunchRect.X != p.Rect.Right()-20 {
		t.Errorf("right-facing punch x = %v, want %v", p.PunchRect.X, p.Rect.Right()-20)
	}

	p.Punching = false
	p.FacingRight = false
	p.Punch()
	if p.PunchRect.X != p.Rect.X-60 {
		t.Errorf("left-facing punch x = %v, want %v", p.PunchRect.X, p.Rect.X-60)
	}
	if p.PunchRect.Y != p.Rect.Y+10 {
		t.Errorf("punch y = %v, want %v", p.PunchRect.Y, p.Rect.Y+10)
	}
}

func TestShieldPickup(t *testing.T) {
	p, cfg := newTestPlayer()
	p.Health = 50

	p.AddPowerUp(PowerShield)

	if p.MaxHealth != 100+cfg.Powers.ShieldMaxHealthBonus {
		t.Errorf("max health = %d, want %d", p.MaxHealth, 100+cfg.Powers.ShieldMaxHealthBonus)
	}
	if p.Health != 50+cfg.Powers.ShieldHeal {
		t.Errorf("health = %d, want %d", p.Health, 50+cfg.Powers.ShieldHeal)
	}
	if !p.HasPower(PowerShield) {
		t.Error("shield not unlocked")
	}

	// Every shield pickup applies again
	p.AddPowerUp(PowerShield)
	if p.MaxHealth != 100+2*cfg.Powers.ShieldMaxHealthBonus {
		t.Errorf("max health after second shield = %d", p.MaxHealth)
	}
}

func TestShieldHealCapsAtMax(t *testing.T) {
	p, cfg := newTestPlayer()

	p.AddPowerUp(PowerShield)
	if p.Health > p.MaxHealth {
		t.Errorf("health %d exceeds max %d", p.Health, p.MaxHealth)
	}
	if p.Health != 100+cfg.Powers.ShieldHeal {
		t.Errorf("health = %d, want %d", p.Health, 100+cfg.Powers.ShieldHeal)
	}
}

func TestSwordPickupStacksPunchDamage(t *testing.T) {
	p, cfg := newTestPlayer()

	p.AddPowerUp(PowerSword)
	if p.PunchDamage != cfg.Combat.PunchDamage+cfg.Powers.SwordPunchBonus {
		t.Errorf("punch damage = %d, want %d", p.PunchDamage, cfg.Combat.PunchDamage+cfg.Powers.SwordPunchBonus)
	}

	p.AddPowerUp(PowerSword)
	if p.PunchDamage != cfg.Combat.PunchDamage+2*cfg.Powers.SwordPunchBonus {
		t.Errorf("punch damage after second sword = %d", p.PunchDamage)
	}
}

func TestAmmoPickupStacks(t *testing.T) {
	p, cfg := newTestPlayer()

	p.AddPowerUp(PowerGun)
	want := cfg.Powers.Gun.AmmoStart + cfg.Powers.Gun.AmmoPickup
	if got := p.Ammo(PowerGun); got != want {
		t.Errorf("gun ammo = %d, want %d", got, want)
	}
}

func TestUsePowerConsumesAmmo(t *testing.T) {
	cfg := config.DefaultPuncherConfig()
	w := NewWorld(&cfg, 7)
	w.Projectiles = nil
	p := w.Player

	// Fire every starting fireball
	for i := 0; i < cfg.Powers.Fireball.AmmoStart; i++ {
		p.UsePower(PowerFireball, w)
	}
	if got := p.Ammo(PowerFireball); got != 0 {
		t.Fatalf("fireball ammo = %d after emptying, want 0", got)
	}
	if len(w.Projectiles) != cfg.Powers.Fireball.AmmoStart {
		t.Fatalf("projectiles spawned = %d, want %d", len(w.Projectiles), cfg.Powers.Fireball.AmmoStart)
	}

	// Out of ammo: silent no-op
	p.UsePower(PowerFireball, w)
	if len(w.Projectiles) != cfg.Powers.Fireball.AmmoStart {
		t.Error("projectile fired with zero ammo")
	}
}

func TestUsePowerLockedAndMelee(t *testing.T) {
	cfg := config.DefaultPuncherConfig()
	w := NewWorld(&cfg, 7)
	w.Projectiles = nil
	p := w.Player

	// Locked kind
	p.UsePower(PowerBow, w)
	// Melee/passive kinds never fire
	p.UsePower(PowerSword, w)
	p.UsePower(PowerShield, w)

	if len(w.Projectiles) != 0 {
		t.Errorf("%d projectiles spawned from locked or melee powers", len(w.Projectiles))
	}
}

func TestProjectileSpawnsAtLeadingEdge(t *testing.T) {
	cfg := config.DefaultPuncherConfig()
	w := NewWorld(&cfg, 7)
	w.Projectiles = nil
	p := w.Player

	p.UsePower(PowerGun, w)
	if len(w.Projectiles) != 1 {
		t.Fatal("no projectile spawned")
	}
	pr := w.Projectiles[0]
	if pr.Rect.X != p.Rect.Right() {
		t.Errorf("right-facing projectile x = %v, want %v", pr.Rect.X, p.Rect.Right())
	}
	if pr.Dir != 1 {
		t.Errorf("projectile dir = %v, want 1", pr.Dir)
	}

	p.FacingRight = false
	p.UsePower(PowerGun, w)
	pr = w.Projectiles[1]
	if pr.Rect.X != p.Rect.X {
		t.Errorf("left-facing projectile x = %v, want %v", pr.Rect.X, p.Rect.X)
	}
	if pr.Dir != -1 {
		t.Errorf("projectile dir = %v, want -1", pr.Dir)
	}
}
