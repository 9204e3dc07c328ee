package config

import (
	_ "embed"
)

//go:embed defaults/puncher.yaml
var defaultPuncherYAML []byte

// DefaultPuncherConfig returns the default Puncher configuration.
func DefaultPuncherConfig() PuncherConfig {
	return PuncherConfig{
		World: WorldConfig{
			Width:        3000,
			ViewW:        1200,
			ViewH:        800,
			GroundHeight: 50,
			FinalLevel:   5,
		},
		Physics: PhysicsConfig{
			MoveSpeed:   8,
			JumpImpulse: -18,
			Gravity:     1,
		},
		Player: PlayerConfig{
			Width:       60,
			Height:      80,
			SneakHeight: 40,
			StartX:      100,
			MaxHealth:   100,
		},
		Combat: CombatConfig{
			PunchDamage:       35,
			PunchDuration:     10,
			PunchW:            80,
			PunchH:            60,
			PunchMargin:       10,
			InvulnTicks:       60,
			ContactRadius:     50,
			ProjectileRadius:  40,
			GoalRadius:        80,
			TreasureMargin:    25,
			PowerUpMargin:     30,
			CleanupEdge:       200,
			CleanupPlayerDist: 2000,
		},
		Enemies: EnemyConfig{
			Width:       50,
			Height:      60,
			HealthBase:  20,
			HealthStep:  5,
			DamageBase:  8,
			DamageStep:  3,
			SpeedBase:   1.5,
			SpeedStep:   0.3,
			PointsBase:  75,
			PointsStep:  25,
			PatrolEvery: 60,
			HitFlash:    5,
		},
		Powers: PowersConfig{
			Fireball:  WeaponConfig{Damage: 40, Speed: 15, AmmoStart: 10, AmmoPickup: 10},
			Gun:       WeaponConfig{Damage: 20, Speed: 15, AmmoStart: 20, AmmoPickup: 30},
			LaserEyes: WeaponConfig{Damage: 50, Speed: 25, AmmoStart: 5, AmmoPickup: 8},
			Bow:       WeaponConfig{Damage: 35, Speed: 15, AmmoStart: 12, AmmoPickup: 15},

			ShieldMaxHealthBonus: 50,
			ShieldHeal:           25,
			SwordPunchBonus:      15,
		},
		Levels: LevelConfig{
			EnemyBase:    4,
			EnemyStep:    2,
			TreasureBase: 3,
			PowerUpBase:  1,
			PowerUpDiv:   2,
			TreasureMin:  150,
			TreasureMax:  400,
		},
	}
}
