package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStarfall loads the starfall configuration.
// Search order: customPath -> ~/.arcade/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadStarfall(customPath string) (StarfallConfig, error) {
	cfg := DefaultStarfallConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfall.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "starfall.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or unparsable files are skipped.
func tryLoad(path string) (StarfallConfig, bool) {
	cfg := DefaultStarfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyStarfallPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return fmt.Errorf("config: unknown difficulty %q: %w", preset, ErrInvalidConfig)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 6
		cfg.Energy.Probability = 30
	case DifficultyHard:
		cfg.Ship.Lives = 3
		cfg.Energy.Probability = 12
	}
	return nil
}
