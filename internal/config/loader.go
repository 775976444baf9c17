package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/kvfile"
)

// Labels of the legacy plain-text configuration file.
const (
	LabelScreenWidth    = "Screen width"
	LabelScreenHeight   = "Screen height"
	LabelTileWidth      = "Tile width"
	LabelFPS            = "FPS"
	LabelEnemies        = "Enemies"
	LabelBreakables     = "Breakables"
	LabelDuelRounds     = "Duel rounds"
	LabelBonusChance    = "Bonus chance"
	LabelBonusMegaBombs = "Bonus mega bombs"
	LabelBonusSpeed     = "Bonus speed"
	LabelSaveFile       = "Save file"
	LabelHighScore      = "High score"
)

// LoadBomber loads Bomber configuration. Fields missing from the file keep
// their defaults. A custom path ending in .txt is read as the legacy labelled
// format.
// Search order: customPath -> ~/.bomber/configs/bomber.yaml -> ./configs/bomber.yaml -> embedded default
func LoadBomber(customPath string) (BomberConfig, error) {
	cfg := DefaultBomberConfig()

	// Try custom path first
	if customPath != "" {
		if strings.EqualFold(filepath.Ext(customPath), ".txt") {
			return LoadLegacy(customPath)
		}
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bomber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBomberConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bomber.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBomberConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBomberYAML, &cfg); err != nil {
		return DefaultBomberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadLegacy reads the plain-text labelled configuration. The screen labels
// are optional; every other label is required.
func LoadLegacy(path string) (BomberConfig, error) {
	cfg := DefaultBomberConfig()

	f, err := kvfile.Read(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	optional := []struct {
		label string
		dst   *int
	}{
		{LabelScreenWidth, &cfg.Screen.Width},
		{LabelScreenHeight, &cfg.Screen.Height},
		{LabelTileWidth, &cfg.Screen.TileWidth},
		{LabelFPS, &cfg.Screen.FPS},
	}
	for _, o := range optional {
		n, err := f.Int(o.label)
		if errors.Is(err, kvfile.ErrLabelNotFound) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		*o.dst = n
	}

	required := []struct {
		label string
		dst   *int
	}{
		{LabelEnemies, &cfg.Gameplay.Enemies},
		{LabelBreakables, &cfg.Gameplay.Breakables},
		{LabelDuelRounds, &cfg.Gameplay.DuelRounds},
		{LabelBonusChance, &cfg.Gameplay.BonusChance},
		{LabelBonusMegaBombs, &cfg.Bonuses.MegaBombs},
		{LabelBonusSpeed, &cfg.Bonuses.Speed},
		{LabelHighScore, &cfg.Files.HighScore},
	}
	for _, r := range required {
		n, err := f.Int(r.label)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		*r.dst = n
	}

	save, err := f.String(LabelSaveFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Files.SaveFile = save
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}

// ExpandPath expands a leading ~ in path to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// ApplyBomberPreset modifies the config based on a difficulty preset.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust bonus odds based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.BonusChance = min(100, cfg.Gameplay.BonusChance+10)
	case DifficultyHard:
		cfg.Gameplay.BonusChance = max(0, cfg.Gameplay.BonusChance-10)
	}
}
