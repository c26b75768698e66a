// Package config provides YAML-based settings loading for the queens
// puzzle: board defaults, score storage, sound cues and the SSH server.
package config

import "time"

// Settings is the full contents of queens.yaml.
type Settings struct {
	Board  BoardSettings  `yaml:"board"`
	Scores ScoreSettings  `yaml:"scores"`
	Sound  SoundSettings  `yaml:"sound"`
	Server ServerSettings `yaml:"server"`
}

// BoardSettings picks the puzzle played when no preset is given.
type BoardSettings struct {
	Size       int    `yaml:"size"`
	Difficulty string `yaml:"difficulty"`
}

// ScoreSettings configures the leaderboard backend.
type ScoreSettings struct {
	Keep  int    `yaml:"keep"`  // fastest times kept per board size
	Store string `yaml:"store"` // sqlite path or redis:// URL; empty uses the default path
}

// SoundSettings configures cue playback.
type SoundSettings struct {
	Enabled bool      `yaml:"enabled"`
	Mode    SoundMode `yaml:"mode"`
}

// SoundMode selects the cue player.
type SoundMode string

const (
	SoundBell SoundMode = "bell"
	SoundLog  SoundMode = "log"
	SoundMute SoundMode = "mute"
)

// ServerSettings configures `queens serve`.
type ServerSettings struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
