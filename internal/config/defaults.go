package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/queens.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings. They match the embedded
// defaults/queens.yaml and back it up if that file fails to parse.
func DefaultSettings() Settings {
	return Settings{
		Board: BoardSettings{
			Size:       8,
			Difficulty: "easy",
		},
		Scores: ScoreSettings{
			Keep: 10,
		},
		Sound: SoundSettings{
			Enabled: true,
			Mode:    SoundBell,
		},
		Server: ServerSettings{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
