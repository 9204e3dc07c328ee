package game

import (
	"testing"

	"github.com/punchworks/puncher/internal/config"
	"github.com/punchworks/puncher/internal/core"
)

func TestProjectileExpiryIsCameraRelative(t *testing.T) {
	cfg := config.DefaultPuncherConfig()
	viewW := cfg.World.ViewW

	// World x 1500 is visible with the camera at 1000 but past the right
	// viewport edge with the camera at 0. Expiry follows the camera, not
	// the world position.
	p := NewProjectile(1500, 500, 1, PowerGun, &cfg.Powers.Gun)
	if p.Expired(1000, viewW) {
		t.Error("projectile inside the viewport reported expired")
	}
	if !p.Expired(0, viewW) {
		t.Error("projectile past the right viewport edge not expired")
	}

	// Fully off the left edge is expired; straddling the edge is not.
	left := NewProjectile(980, 500, -1, PowerGun, &cfg.Powers.Gun)
	if !left.Expired(1000, viewW) {
		t.Error("projectile fully past the left viewport edge not expired")
	}
	straddle := NewProjectile(996, 500, -1, PowerGun, &cfg.Powers.Gun)
	if straddle.Expired(1000, viewW) {
		t.Error("projectile straddling the left edge reported expired")
	}
}

func TestUpdateRemovesOffViewportProjectiles(t *testing.T) {
	w := newTestWorld(1)
	w.Projectiles = append(w.Projectiles,
		NewProjectile(5000, 500, 1, PowerGun, &w.cfg.Powers.Gun),
		NewProjectile(300, 500, 1, PowerGun, &w.cfg.Powers.Gun),
	)

	w.Update(core.NewInputFrame())

	if len(w.Projectiles) != 1 {
		t.Fatalf("%d projectiles left, want 1", len(w.Projectiles))
	}
	if got := w.Projectiles[0].Rect.X; got != 315 {
		t.Errorf("surviving projectile x = %v, want 315", got)
	}
}
