package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BomberConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("bomber"), &cfg))
	assert.Equal(t, DefaultBomberConfig(), cfg)
	assert.NoError(t, Validate(cfg))
	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestLoadBomberCustomYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  enemies: 8\nscreen:\n  fps: 120\n"), 0o644))

	cfg, err := LoadBomber(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Gameplay.Enemies)
	assert.Equal(t, 120, cfg.Screen.FPS)
	assert.Equal(t, 40, cfg.Gameplay.Breakables)
	assert.Equal(t, 96, cfg.Screen.TileWidth)
}

func TestLoadBomberCustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBomber(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gameplay: [not, a, map"), 0o644))
	_, err = LoadBomber(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

const legacyConfig = `"Screen width"
1920
"Enemies"
3
"Breakables"
25
"Duel rounds"
5
"Bonus chance"
50
"Bonus mega bombs"
1
"Bonus speed"
0
"Save file"
./saves/slot.txt
"High score"
600
`

func TestLoadLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(legacyConfig), 0o644))

	cfg, err := LoadBomber(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Screen.Width)
	assert.Equal(t, 1440, cfg.Screen.Height) // optional, default kept
	assert.Equal(t, 96, cfg.Screen.TileWidth)
	assert.Equal(t, 3, cfg.Gameplay.Enemies)
	assert.Equal(t, 25, cfg.Gameplay.Breakables)
	assert.Equal(t, 5, cfg.Gameplay.DuelRounds)
	assert.Equal(t, 50, cfg.Gameplay.BonusChance)
	assert.Equal(t, 1, cfg.Bonuses.MegaBombs)
	assert.Equal(t, 0, cfg.Bonuses.Speed)
	assert.Equal(t, "./saves/slot.txt", cfg.Files.SaveFile)
	assert.Equal(t, 600, cfg.Files.HighScore)
	assert.NoError(t, Validate(cfg))
}

func TestLoadLegacyRequiresLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte("\"Enemies\"\n3\n"), 0o644))

	_, err := LoadLegacy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The item Breakables was not found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BomberConfig)
		field  string
	}{
		{"tile too small", func(c *BomberConfig) { c.Screen.TileWidth = 32 }, LabelTileWidth},
		{"tile not multiple of 32", func(c *BomberConfig) { c.Screen.TileWidth = 100 }, LabelTileWidth},
		{"fps too low", func(c *BomberConfig) { c.Screen.FPS = 30 }, LabelFPS},
		{"screen too narrow", func(c *BomberConfig) { c.Screen.Width = 4 * 96 }, LabelScreenWidth},
		{"screen too wide", func(c *BomberConfig) { c.Screen.Width = 2304 }, LabelScreenWidth},
		{"screen too tall", func(c *BomberConfig) { c.Screen.Height = 1536 }, LabelScreenHeight},
		{"enemies stand still", func(c *BomberConfig) {
			c.Screen.TileWidth = 64
			c.Screen.Width, c.Screen.Height = 640, 640
			c.Screen.FPS = 144
		}, LabelFPS},
		{"negative high score", func(c *BomberConfig) { c.Files.HighScore = -1 }, LabelHighScore},
		{"no save file", func(c *BomberConfig) { c.Files.SaveFile = "" }, LabelSaveFile},
		{"too many enemies", func(c *BomberConfig) { c.Gameplay.Enemies = 11 }, LabelEnemies},
		{"too many breakables", func(c *BomberConfig) { c.Gameplay.Breakables = 101 }, LabelBreakables},
		{"no duel rounds", func(c *BomberConfig) { c.Gameplay.DuelRounds = 0 }, LabelDuelRounds},
		{"bonus chance over 100", func(c *BomberConfig) { c.Gameplay.BonusChance = 101 }, LabelBonusChance},
		{"mega bombs zero", func(c *BomberConfig) { c.Bonuses.MegaBombs = 0 }, LabelBonusMegaBombs},
		{"negative speed bonus", func(c *BomberConfig) { c.Bonuses.Speed = -1 }, LabelBonusSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBomberConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	cfg := DefaultBomberConfig()
	cfg.Screen.TileWidth = 64
	cfg.Screen.Width = 2240 / 64 * 64
	cfg.Screen.Height = 5 * 64
	cfg.Gameplay.Enemies = 0
	cfg.Gameplay.BonusChance = 100
	cfg.Gameplay.DuelRounds = 10
	assert.NoError(t, Validate(cfg))
}

func TestApplyBomberPreset(t *testing.T) {
	cfg := DefaultBomberConfig()
	ApplyBomberPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 10, cfg.Gameplay.BonusChance)

	cfg = DefaultBomberConfig()
	ApplyBomberPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	assert.Equal(t, DifficultyEasy, ParsePreset("easy"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("insane"))
}

func TestDifficultyManagerScalesCounts(t *testing.T) {
	d := NewDifficultyManager(DefaultBomberConfig().Difficulty)

	assert.Equal(t, 5, d.Enemies(5, 0))
	assert.Equal(t, 40, d.Breakables(40, 0))

	// Halfway to max_at
	assert.Equal(t, 7, d.Enemies(5, 5))
	assert.Equal(t, 55, d.Breakables(40, 5))

	// Clamped at the validated maxima
	assert.Equal(t, 10, d.Enemies(8, 100))
	assert.Equal(t, 70, d.Breakables(40, 100))
	assert.Equal(t, MaxBreakables, d.Breakables(90, 100))
}

func TestDifficultyManagerFixed(t *testing.T) {
	d := NewDifficultyManager(DefaultBomberConfig().Difficulty)
	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 5, d.Enemies(5, 50))

	d.SetInitialLevel(2)
	assert.InDelta(t, 1.0, d.Level(0), 1e-9)
}
