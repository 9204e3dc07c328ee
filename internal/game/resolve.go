package game

// Resolve performs all cross-entity interaction passes for one tick, in a
// fixed order, over the current snapshot of live entities. Removals take
// effect immediately and are not revisited within the same pass. Must run
// after all entities have been individually updated, and only while the
// game is in the playing mode.
//
// Pass order: punch vs enemies, enemy contact damage, treasure pickup,
// power-up pickup, level goal, projectiles vs enemies, then distance-based
// cleanup and the defeat check.
func (w *World) Resolve() {
	w.resolvePunch()
	w.resolveContactDamage()
	w.resolveTreasures()
	w.resolvePowerUps()
	w.resolveGoal()
	w.resolveProjectiles()
	w.cleanup()

	if w.Player.Health <= 0 {
		w.Over = true
	}
}

// resolvePunch tests the expanded punch rectangle against every live
// enemy. One punch can hit multiple enemies in a tick, and keeps hitting
// every tick while the punch window is active.
func (w *World) resolvePunch() {
	if !w.Player.Punching {
		return
	}
	punchArea := w.Player.PunchRect.Inflate(w.cfg.Combat.PunchMargin)

	for i := 0; i < len(w.Enemies); {
		e := w.Enemies[i]
		if punchArea.Intersects(e.Rect) {
			e.TakeDamage(w.Player.PunchDamage)
			if e.Health <= 0 {
				w.Score += e.Points
				w.removeEnemy(i)
				continue
			}
		}
		i++
	}
}

// resolveContactDamage applies touch damage from every enemy within the
// contact radius. Every enemy in range deals damage in the same tick; the
// first hit opens the invulnerability window, making the rest no-ops.
func (w *World) resolveContactDamage() {
	for _, e := range w.Enemies {
		if w.Player.Rect.CenterDist(e.Rect) < w.cfg.Combat.ContactRadius && !w.Player.Invulnerable {
			w.Player.TakeDamage(e.Damage)
		}
	}
}

// resolveTreasures picks up any treasure whose inflated pickup area
// overlaps the hero, or whose raw rectangle does.
func (w *World) resolveTreasures() {
	for i := 0; i < len(w.Treasures); {
		t := w.Treasures[i]
		pickupArea := t.Rect.Inflate(w.cfg.Combat.TreasureMargin)
		if pickupArea.Intersects(w.Player.Rect) || w.Player.Rect.Intersects(t.Rect) {
			w.Score += t.Points
			w.removeTreasure(i)
			continue
		}
		i++
	}
}

// resolvePowerUps is the same dual-rectangle test with a larger margin.
func (w *World) resolvePowerUps() {
	for i := 0; i < len(w.PowerUps); {
		p := w.PowerUps[i]
		pickupArea := p.Rect.Inflate(w.cfg.Combat.PowerUpMargin)
		if pickupArea.Intersects(w.Player.Rect) || w.Player.Rect.Intersects(p.Rect) {
			w.Player.AddPowerUp(p.Kind)
			w.removePowerUp(i)
			continue
		}
		i++
	}
}

// resolveGoal advances the level when the hero touches the portal.
// Beating the final level ends the game in victory; otherwise the hero and
// camera reset to the world start and the level content is regenerated.
func (w *World) resolveGoal() {
	if w.Goal == nil {
		return
	}
	if w.Player.Rect.CenterDist(w.Goal.Rect) >= w.cfg.Combat.GoalRadius {
		return
	}

	w.Level++
	if w.Level > w.cfg.World.FinalLevel {
		w.Over = true
		w.Victory = true
		return
	}

	w.Player.ResetPosition()
	w.CameraX = 0
	w.GenerateLevel()
}

// resolveProjectiles applies each projectile to the first enemy within the
// hit radius. The projectile is consumed on hit, so it strikes at most one
// enemy per tick; iteration order breaks ties between enemies in range.
func (w *World) resolveProjectiles() {
	for pi := 0; pi < len(w.Projectiles); {
		p := w.Projectiles[pi]
		hit := false

		for ei := 0; ei < len(w.Enemies); ei++ {
			e := w.Enemies[ei]
			if p.Rect.CenterDist(e.Rect) < w.cfg.Combat.ProjectileRadius {
				e.TakeDamage(p.Damage)
				if e.Health <= 0 {
					w.Score += e.Points
					w.removeEnemy(ei)
				}
				hit = true
				break
			}
		}

		if hit {
			w.removeProjectile(pi)
			continue
		}
		pi++
	}
}

// cleanup removes any non-player, non-goal entity that has drifted outside
// the world margins or too far from the hero, preventing unbounded
// accumulation of stale off-screen entities.
func (w *World) cleanup() {
	edge := w.cfg.Combat.CleanupEdge
	maxDist := w.cfg.Combat.CleanupPlayerDist
	playerX := w.Player.Rect.X

	stale := func(x float64) bool {
		if x < -edge || x > w.cfg.World.Width+edge {
			return true
		}
		d := x - playerX
		if d < 0 {
			d = -d
		}
		return d > maxDist
	}

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !stale(e.Rect.X) {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	treasures := w.Treasures[:0]
	for _, t := range w.Treasures {
		if !stale(t.Rect.X) {
			treasures = append(treasures, t)
		}
	}
	w.Treasures = treasures

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !stale(p.Rect.X) {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !stale(p.Rect.X) {
			projectiles = append(projectiles, p)
		}
	}
	w.Projectiles = projectiles
}

// removeEnemy deletes the enemy at index i, preserving iteration order.
func (w *World) removeEnemy(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

func (w *World) removeTreasure(i int) {
	w.Treasures = append(w.Treasures[:i], w.Treasures[i+1:]...)
}

func (w *World) removePowerUp(i int) {
	w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
}

func (w *World) removeProjectile(i int) {
	w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
}
