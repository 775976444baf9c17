package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return invalid(field, "must be between %d and %d, got %d", lo, hi, v)
	}
	return nil
}

// Validate checks the configuration before a game starts. It returns the
// first violation as a *ValidationError.
func Validate(cfg BomberConfig) error {
	s := cfg.Screen
	if err := checkRange(LabelTileWidth, s.TileWidth, 64, 256); err != nil {
		return err
	}
	if s.TileWidth%32 != 0 {
		return invalid(LabelTileWidth, "must be a multiple of 32, got %d", s.TileWidth)
	}
	if s.FPS < 60 {
		return invalid(LabelFPS, "must be at least 60, got %d", s.FPS)
	}

	tw := s.TileWidth
	if err := checkRange(LabelScreenWidth, s.Width, 5*tw, 2240/tw*tw); err != nil {
		return err
	}
	if err := checkRange(LabelScreenHeight, s.Height, 5*tw, 1440/tw*tw); err != nil {
		return err
	}

	// Enemies move int((tw/32) / (fps/60)) pixels per tick
	if float64(tw/32)/(float64(s.FPS)/60) < 1 {
		return invalid(LabelFPS, "is too high for tile width %d, enemies would not move", tw)
	}

	if cfg.Files.HighScore < 0 {
		return invalid(LabelHighScore, "must not be negative, got %d", cfg.Files.HighScore)
	}
	if cfg.Files.SaveFile == "" {
		return invalid(LabelSaveFile, "must not be empty")
	}

	g := cfg.Gameplay
	if err := checkRange(LabelEnemies, g.Enemies, 0, MaxEnemies); err != nil {
		return err
	}
	if err := checkRange(LabelBreakables, g.Breakables, 0, MaxBreakables); err != nil {
		return err
	}
	if err := checkRange(LabelDuelRounds, g.DuelRounds, 1, 10); err != nil {
		return err
	}
	if err := checkRange(LabelBonusChance, g.BonusChance, 0, 100); err != nil {
		return err
	}

	if cfg.Bonuses.MegaBombs < 1 {
		return invalid(LabelBonusMegaBombs, "must be at least 1, got %d", cfg.Bonuses.MegaBombs)
	}
	if cfg.Bonuses.Speed < 0 {
		return invalid(LabelBonusSpeed, "must not be negative, got %d", cfg.Bonuses.Speed)
	}
	return nil
}
