// Package config provides YAML-based game configuration loading, validation
// and difficulty management for Bomber.
package config

// BomberConfig contains all configuration for the Bomber game.
type BomberConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Bonuses    BonusConfig      `yaml:"bonuses"`
	Files      FilesConfig      `yaml:"files"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the pixel geometry the simulation runs in.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TileWidth int `yaml:"tile_width"`
	FPS       int `yaml:"fps"`
}

// GameplayConfig defines map population and match rules.
type GameplayConfig struct {
	Enemies     int `yaml:"enemies"`
	Breakables  int `yaml:"breakables"`
	DuelRounds  int `yaml:"duel_rounds"`
	BonusChance int `yaml:"bonus_chance"` // percent
}

// BonusConfig defines the strength of each bonus kind.
type BonusConfig struct {
	MegaBombs int `yaml:"mega_bombs"` // extra blast cells per arm
	Speed     int `yaml:"speed"`      // extra pixels per tick
}

// FilesConfig defines persisted state.
type FilesConfig struct {
	SaveFile  string `yaml:"save_file"`
	HighScore int    `yaml:"high_score"` // floor for the stored high score
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "maps" or "none"
	MaxAt int    `yaml:"max_at"` // Maps cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraEnemies    int `yaml:"extra_enemies"`    // Enemies added at max difficulty
	ExtraBreakables int `yaml:"extra_breakables"` // Breakables added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
