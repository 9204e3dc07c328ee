// Package config provides YAML-based game tuning for Puncher.
// All values are balance knobs; the simulation contracts (clamping,
// pass ordering, removal rules) do not depend on them.
package config

// PuncherConfig contains all tuning for the Puncher game.
type PuncherConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Powers  PowersConfig  `yaml:"powers"`
	Levels  LevelConfig   `yaml:"levels"`
}

// WorldConfig defines the world and viewport geometry in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`         // Total world width
	ViewW        float64 `yaml:"view_w"`        // Viewport width
	ViewH        float64 `yaml:"view_h"`        // Viewport height
	GroundHeight float64 `yaml:"ground_height"` // Ground strip height at the bottom
	FinalLevel   int     `yaml:"final_level"`   // Beating this level wins the game
}

// PhysicsConfig defines the player movement parameters.
type PhysicsConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal speed per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity on jump (negative = up)
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
}

// PlayerConfig defines the hero's footprint and starting state.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SneakHeight float64 `yaml:"sneak_height"` // Footprint height while sneaking
	StartX      float64 `yaml:"start_x"`
	MaxHealth   int     `yaml:"max_health"`
}

// CombatConfig defines attack windows and hit-detection radii.
type CombatConfig struct {
	PunchDamage       int     `yaml:"punch_damage"`
	PunchDuration     int     `yaml:"punch_duration"` // Ticks the punch stays active
	PunchW            float64 `yaml:"punch_w"`        // Punch hit-rectangle size
	PunchH            float64 `yaml:"punch_h"`
	PunchMargin       float64 `yaml:"punch_margin"`    // Extra inflation when testing enemies
	InvulnTicks       int     `yaml:"invuln_ticks"`    // Post-hit invulnerability window
	ContactRadius     float64 `yaml:"contact_radius"`  // Enemy touch damage distance
	ProjectileRadius  float64 `yaml:"projectile_radius"` // Projectile vs enemy hit distance
	GoalRadius        float64 `yaml:"goal_radius"`       // Level goal touch distance
	TreasureMargin    float64 `yaml:"treasure_margin"`   // Treasure pickup inflation
	PowerUpMargin     float64 `yaml:"powerup_margin"`    // Power-up pickup inflation
	CleanupEdge       float64 `yaml:"cleanup_edge"`      // Off-world removal margin
	CleanupPlayerDist float64 `yaml:"cleanup_player_dist"` // Removal distance from player
}

// EnemyConfig defines the level-indexed enemy stat scaling law.
// Each stat for level L (1-indexed) is base + L*step.
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HealthBase int     `yaml:"health_base"`
	HealthStep int     `yaml:"health_step"`
	DamageBase int     `yaml:"damage_base"`
	DamageStep int     `yaml:"damage_step"`
	SpeedBase  float64 `yaml:"speed_base"`
	SpeedStep  float64 `yaml:"speed_step"`
	PointsBase int     `yaml:"points_base"`
	PointsStep int     `yaml:"points_step"`
	PatrolEvery int    `yaml:"patrol_every"` // Ticks between direction re-rolls
	HitFlash    int    `yaml:"hit_flash"`    // Cosmetic flash duration in ticks
}

// WeaponConfig defines one ammo-consuming power.
type WeaponConfig struct {
	Damage     int     `yaml:"damage"`
	Speed      float64 `yaml:"speed"`       // Projectile speed per tick
	AmmoStart  int     `yaml:"ammo_start"`  // Ammo granted at game start (if unlocked)
	AmmoPickup int     `yaml:"ammo_pickup"` // Ammo granted per power-up pickup
}

// PowersConfig defines the effects of each power-up kind.
type PowersConfig struct {
	Fireball WeaponConfig `yaml:"fireball"`
	Gun      WeaponConfig `yaml:"gun"`
	LaserEyes WeaponConfig `yaml:"laser_eyes"`
	Bow      WeaponConfig `yaml:"bow"`

	ShieldMaxHealthBonus int `yaml:"shield_max_health_bonus"`
	ShieldHeal           int `yaml:"shield_heal"`
	SwordPunchBonus      int `yaml:"sword_punch_bonus"`
}

// LevelConfig defines the monotonic entity-count formulas per level L:
// enemies = enemy_base + L*enemy_step, treasures = treasure_base + L,
// power-ups = powerup_base + L/powerup_div (integer division).
type LevelConfig struct {
	EnemyBase    int `yaml:"enemy_base"`
	EnemyStep    int `yaml:"enemy_step"`
	TreasureBase int `yaml:"treasure_base"`
	PowerUpBase  int `yaml:"powerup_base"`
	PowerUpDiv   int `yaml:"powerup_div"`

	TreasureMin int `yaml:"treasure_min"` // Treasure point value range
	TreasureMax int `yaml:"treasure_max"`
}
