package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/queens"
)

func TestFormatSolution(t *testing.T) {
	s := queens.Solve(4, 1)
	require.Len(t, s, 1)

	want := "  . Q . .\n" +
		"  . . . Q\n" +
		"  Q . . .\n" +
		"  . . Q .\n"
	assert.Equal(t, want, formatSolution(s[0], 4))
}

func TestResolveVariant(t *testing.T) {
	reset := func() {
		settings = config.DefaultSettings()
		flagSize, flagDifficulty = 0, ""
	}
	t.Cleanup(reset)

	reset()
	id, err := resolveVariant(nil)
	require.NoError(t, err)
	assert.Equal(t, game.CustomID, id)

	reset()
	flagSize, flagDifficulty = 6, "hard"
	id, err = resolveVariant(nil)
	require.NoError(t, err)
	assert.Equal(t, game.CustomID, id)
	assert.Equal(t, 6, settings.Board.Size)
	assert.Equal(t, "hard", settings.Board.Difficulty)

	reset()
	flagSize = 6
	_, err = resolveVariant([]string{"classic"})
	assert.Error(t, err, "board flags only apply to custom boards")

	reset()
	flagSize = 13
	_, err = resolveVariant(nil)
	assert.Error(t, err)
	assert.Equal(t, 8, settings.Board.Size, "settings are unchanged on error")

	reset()
	_, err = resolveVariant([]string{"huge"})
	assert.Error(t, err)
}
