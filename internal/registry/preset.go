package registry

import (
	"fmt"

	"github.com/vovakirdan/queens-arcade/internal/queens"
)

// Preset is a named puzzle setup offered by the menu and `queens play`.
type Preset struct {
	ID     string
	Title  string
	Config queens.GameConfig
}

// Description returns a one-line summary such as "8x8, Hard".
func (p Preset) Description() string {
	n := p.Config.BoardSize()
	return fmt.Sprintf("%dx%d, %s", n, n, p.Config.Difficulty().DisplayName())
}

var presets = []Preset{
	{ID: "mini", Title: "Mini 4x4", Config: queens.MustGameConfig(4, queens.Easy)},
	{ID: "classic", Title: "Classic 8x8", Config: queens.MustGameConfig(8, queens.Easy)},
	{ID: "medium", Title: "Medium 8x8", Config: queens.MustGameConfig(8, queens.Medium)},
	{ID: "hard", Title: "Hard 8x8", Config: queens.MustGameConfig(8, queens.Hard)},
	{ID: "grand", Title: "Grand 12x12", Config: queens.MustGameConfig(12, queens.Hard)},
}

// Presets returns the built-in presets in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by ID.
func LookupPreset(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func presetOrder(id string) int {
	for i, p := range presets {
		if p.ID == id {
			return i
		}
	}
	return len(presets)
}
