package sound

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/queens"
)

func TestCueFor(t *testing.T) {
	p := queens.Pos(1, 2)
	tests := []struct {
		name   string
		action queens.Action
		want   Cue
	}{
		{"initial snapshot", nil, CueNone},
		{"added clean", queens.QueenAdded{Position: p}, CuePlaced},
		{"added into conflict", queens.QueenAdded{Position: p, CausedConflict: true}, CueWarning},
		{"moved clean", queens.QueenMoved{From: p, To: queens.Pos(3, 0)}, CuePlaced},
		{"moved into conflict", queens.QueenMoved{From: p, To: queens.Pos(3, 0), CausedConflict: true}, CueWarning},
		{"removed", queens.QueenRemoved{Position: p}, CueNone},
		{"won", queens.GameWon{}, CueVictory},
		{"reset", queens.GameReset{}, CueReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CueFor(tt.action))
		})
	}
}

func TestBellPlayer(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf)

	p.Play(CueNone)
	assert.Empty(t, buf.String())

	p.Play(CuePlaced)
	p.Play(CueWarning)
	p.Play(CueVictory)
	assert.Equal(t, strings.Repeat("\a", 6), buf.String())
}

func TestLogPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := NewLogPlayer(logger)

	p.Play(CueNone)
	assert.Empty(t, buf.String())

	p.Play(CueVictory)
	assert.Contains(t, buf.String(), "cue=victory")
}

func TestNewSelectsPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	assert.IsType(t, Mute{}, New(config.SoundSettings{Enabled: false, Mode: config.SoundBell}, &buf, logger))
	assert.IsType(t, &BellPlayer{}, New(config.SoundSettings{Enabled: true, Mode: config.SoundBell}, &buf, logger))
	assert.IsType(t, &LogPlayer{}, New(config.SoundSettings{Enabled: true, Mode: config.SoundLog}, &buf, logger))
	assert.IsType(t, Mute{}, New(config.SoundSettings{Enabled: true, Mode: config.SoundMute}, &buf, logger))
}
