package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default Bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Screen: ScreenConfig{
			Width:     2208,
			Height:    1440,
			TileWidth: 96,
			FPS:       60,
		},
		Gameplay: GameplayConfig{
			Enemies:     5,
			Breakables:  40,
			DuelRounds:  3,
			BonusChance: 20,
		},
		Bonuses: BonusConfig{
			MegaBombs: 2,
			Speed:     2,
		},
		Files: FilesConfig{
			SaveFile:  "~/.bomber/save.txt",
			HighScore: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "maps",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraEnemies:    5,
				ExtraBreakables: 30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bomber", "bomber_duel":
		return defaultBomberYAML
	default:
		return nil
	}
}
