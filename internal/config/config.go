// Package config provides YAML-based game configuration loading and
// difficulty management for starfall.
package config

import (
	"errors"
	"fmt"
)

// StarfallConfig contains all configuration for the asteroid field game.
type StarfallConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Energy     EnergyConfig     `yaml:"energy"`
	Timing     TimingConfig     `yaml:"timing"`
	Records    RecordsConfig    `yaml:"records"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Lives        int     `yaml:"lives"`
	Bullets      int     `yaml:"bullets"`
	Speed        float64 `yaml:"speed"`         // Units per second while steering
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	BottomOffset int     `yaml:"bottom_offset"` // Distance from the bottom edge to the ship center
}

// AsteroidConfig defines asteroid waves.
type AsteroidConfig struct {
	PoolSize   int     `yaml:"pool_size"`
	MinPerWave int     `yaml:"min_per_wave"`
	MaxPerWave int     `yaml:"max_per_wave"`
	FallSpeed  float64 `yaml:"fall_speed"` // Units per tick
	SpawnY     float64 `yaml:"spawn_y"`
	Variants   int     `yaml:"variants"`
	Size       int     `yaml:"size"`
	Spread     bool    `yaml:"spread"` // Re-roll x of freshly spawned overlapping asteroids
}

// BulletConfig defines ship ammunition.
type BulletConfig struct {
	PoolSize int     `yaml:"pool_size"`
	Speed    float64 `yaml:"speed"` // Units per second, upward
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
}

// EnergyConfig defines energy pickups.
type EnergyConfig struct {
	PoolSize         int `yaml:"pool_size"`
	Probability      int `yaml:"probability"` // Percent chance per wave
	BulletsPerPickup int `yaml:"bullets_per_pickup"`
	Size             int `yaml:"size"`
}

// TimingConfig defines the periodic triggers in milliseconds.
type TimingConfig struct {
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	ClockIntervalMs int `yaml:"clock_interval_ms"`
	GameOverDelayMs int `yaml:"game_over_delay_ms"`
}

// RecordsConfig selects how run times are compared for the best record.
type RecordsConfig struct {
	Compare string `yaml:"compare"` // "concat" or "duration"
}

// Record comparison modes.
const (
	CompareConcat   = "concat"
	CompareDuration = "duration"
)

// InputConfig defines terminal input emulation.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"` // How long a key counts as held after its last press
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Run seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Asteroids added to max_per_wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the preconditions the simulation relies on.
func (c StarfallConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world must be positive, got %dx%d: %w", c.World.Width, c.World.Height, ErrInvalidConfig)
	case c.Ship.Lives <= 0:
		return fmt.Errorf("config: ship.lives must be positive, got %d: %w", c.Ship.Lives, ErrInvalidConfig)
	case c.Ship.Bullets < 0:
		return fmt.Errorf("config: ship.bullets must not be negative, got %d: %w", c.Ship.Bullets, ErrInvalidConfig)
	case c.Asteroids.PoolSize <= 0 || c.Bullets.PoolSize <= 0 || c.Energy.PoolSize <= 0:
		return fmt.Errorf("config: pool sizes must be positive: %w", ErrInvalidConfig)
	case c.Asteroids.MinPerWave < 0 || c.Asteroids.MinPerWave > c.Asteroids.MaxPerWave:
		return fmt.Errorf("config: asteroids per wave range [%d, %d] is invalid: %w",
			c.Asteroids.MinPerWave, c.Asteroids.MaxPerWave, ErrInvalidConfig)
	case c.Asteroids.Variants <= 0:
		return fmt.Errorf("config: asteroids.variants must be positive: %w", ErrInvalidConfig)
	case c.Energy.Probability < 0 || c.Energy.Probability > 100:
		return fmt.Errorf("config: energy.probability must be within 0..100, got %d: %w", c.Energy.Probability, ErrInvalidConfig)
	case c.Timing.SpawnIntervalMs <= 0 || c.Timing.ClockIntervalMs <= 0 || c.Timing.GameOverDelayMs < 0:
		return fmt.Errorf("config: timing intervals must be positive: %w", ErrInvalidConfig)
	case c.Records.Compare != CompareConcat && c.Records.Compare != CompareDuration:
		return fmt.Errorf("config: records.compare must be %q or %q, got %q: %w",
			CompareConcat, CompareDuration, c.Records.Compare, ErrInvalidConfig)
	}
	return nil
}
