package config

import (
	"fmt"

	"github.com/vovakirdan/queens-arcade/internal/queens"
)

// ParseDifficulty converts a settings or flag value into a queens.Difficulty.
func ParseDifficulty(s string) (queens.Difficulty, error) {
	d, err := queens.ParseDifficulty(s)
	if err != nil {
		return queens.Easy, fmt.Errorf("config: difficulty must be easy, medium or hard, got %q", s)
	}
	return d, nil
}

// Validate checks values that the engine and stores would otherwise reject.
func (s Settings) Validate() error {
	if _, err := s.GameConfig(); err != nil {
		return err
	}
	if s.Scores.Keep < 1 {
		return fmt.Errorf("config: scores.keep must be at least 1, got %d", s.Scores.Keep)
	}
	switch s.Sound.Mode {
	case SoundBell, SoundLog, SoundMute:
	default:
		return fmt.Errorf("config: unknown sound mode %q", s.Sound.Mode)
	}
	if s.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative")
	}
	return nil
}

// GameConfig builds the engine configuration from the board settings.
func (s Settings) GameConfig() (queens.GameConfig, error) {
	d, err := ParseDifficulty(s.Board.Difficulty)
	if err != nil {
		return queens.GameConfig{}, err
	}
	cfg, err := queens.NewGameConfig(s.Board.Size, d)
	if err != nil {
		return queens.GameConfig{}, fmt.Errorf("config: board.size: %w", err)
	}
	return cfg, nil
}

// ApplyBoard overrides the board settings with CLI flag values. Zero values
// leave the setting untouched.
func (s *Settings) ApplyBoard(size int, difficulty string) error {
	next := *s
	if size != 0 {
		next.Board.Size = size
	}
	if difficulty != "" {
		next.Board.Difficulty = difficulty
	}
	if _, err := next.GameConfig(); err != nil {
		return err
	}
	*s = next
	return nil
}
