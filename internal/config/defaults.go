package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the classic starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		World: WorldConfig{
			Width:  1200,
			Height: 600,
		},
		Ship: ShipConfig{
			Lives:        4,
			Bullets:      4,
			Speed:        800,
			Width:        48,
			Height:       48,
			BottomOffset: 100,
		},
		Asteroids: AsteroidConfig{
			PoolSize:   50,
			MinPerWave: 2,
			MaxPerWave: 4,
			FallSpeed:  5,
			SpawnY:     -100,
			Variants:   2,
			Size:       64,
			Spread:     true,
		},
		Bullets: BulletConfig{
			PoolSize: 10,
			Speed:    600,
			Width:    8,
			Height:   16,
		},
		Energy: EnergyConfig{
			PoolSize:         20,
			Probability:      20,
			BulletsPerPickup: 4,
			Size:             32,
		},
		Timing: TimingConfig{
			SpawnIntervalMs: 600,
			ClockIntervalMs: 1000,
			GameOverDelayMs: 2000,
		},
		Records: RecordsConfig{
			Compare: CompareConcat,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 180, // three minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraAsteroids:  2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "starfall", "dodge":
		return defaultStarfallYAML
	default:
		return nil
	}
}
