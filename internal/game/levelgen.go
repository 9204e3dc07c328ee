package game

// Spawn bands for procedural placement, in world units. X margins keep
// entities away from the world edges; Y bands sit on or just above the
// ground so everything is reachable without platforms.
const (
	enemySpawnMarginX = 200
	enemyFootOffsetY  = 120

	treasureSpawnMarginX = 100
	treasureBandTopY     = 200
	treasureBandBottomY  = 120

	powerUpSpawnMarginX  = 300
	powerUpBandTopY      = 220
	powerUpBandBottomY   = 130

	goalOffsetX = 200
	goalOffsetY = 200
)

// GenerateLevel replaces all level content (enemies, treasures, power-ups,
// projectiles and the goal) with freshly generated entities for the current
// level. The player is untouched; callers reset it separately. Entity counts
// grow monotonically with the level so later levels are strictly busier.
func (w *World) GenerateLevel() {
	lvl := w.cfg.Levels
	worldW := w.cfg.World.Width
	viewH := w.cfg.World.ViewH

	enemyCount := lvl.EnemyBase + w.Level*lvl.EnemyStep
	w.Enemies = make([]*Enemy, 0, enemyCount)
	for i := 0; i < enemyCount; i++ {
		x := w.randRange(enemySpawnMarginX, worldW-enemySpawnMarginX)
		w.Enemies = append(w.Enemies, NewEnemy(x, viewH-enemyFootOffsetY, w.Level, w.cfg, w.rng))
	}

	treasureCount := lvl.TreasureBase + w.Level
	w.Treasures = make([]*Treasure, 0, treasureCount)
	for i := 0; i < treasureCount; i++ {
		x := w.randRange(treasureSpawnMarginX, worldW-treasureSpawnMarginX)
		y := w.randRange(viewH-treasureBandTopY, viewH-treasureBandBottomY)
		points := lvl.TreasureMin + w.rng.Intn(lvl.TreasureMax-lvl.TreasureMin+1)
		w.Treasures = append(w.Treasures, NewTreasure(x, y, points))
	}

	powerUpCount := lvl.PowerUpBase + w.Level/lvl.PowerUpDiv
	w.PowerUps = make([]*PowerUp, 0, powerUpCount)
	for i := 0; i < powerUpCount; i++ {
		x := w.randRange(powerUpSpawnMarginX, worldW-powerUpSpawnMarginX)
		y := w.randRange(viewH-powerUpBandTopY, viewH-powerUpBandBottomY)
		kind := PowerKind(w.rng.Intn(int(NumPowerKinds)))
		w.PowerUps = append(w.PowerUps, NewPowerUp(x, y, kind))
	}

	w.Projectiles = nil
	w.Goal = NewGoal(worldW-goalOffsetX, viewH-goalOffsetY)
}

// randRange returns a uniform float in [lo, hi).
func (w *World) randRange(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}
