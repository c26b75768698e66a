package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/queens-arcade/internal/queens"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultSettings() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSettings())
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 6\n  difficulty: hard\nserver:\n  idle_timeout: 90s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Board.Difficulty != "hard" {
		t.Errorf("board = %+v, expected 6/hard", cfg.Board)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("idle timeout = %v, expected 90s", cfg.Server.IdleTimeout)
	}
	// Keys not in the file keep defaults
	if cfg.Scores.Keep != 10 {
		t.Errorf("scores.keep = %d, expected default 10", cfg.Scores.Keep)
	}
	if cfg.Sound.Mode != SoundBell {
		t.Errorf("sound.mode = %q, expected default bell", cfg.Sound.Mode)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  size: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if !errors.Is(err, queens.ErrBoardSize) {
		t.Errorf("Load() error = %v, expected ErrBoardSize", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("expected embedded size 8, got %d", cfg.Board.Size)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", FileName), []byte("board:\n  size: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Board.Size != 5 {
		t.Errorf("expected ./configs size 5, got %d", cfg.Board.Size)
	}

	// User directory wins over local
	if err := os.MkdirAll(filepath.Join(home, ".queens"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".queens", FileName), []byte("board:\n  size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Board.Size != 10 {
		t.Errorf("expected user size 10, got %d", cfg.Board.Size)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad difficulty", "board:\n  difficulty: brutal\n"},
		{"small board", "board:\n  size: 3\n"},
		{"zero keep", "scores:\n  keep: 0\n"},
		{"bad sound mode", "sound:\n  mode: midi\n"},
		{"negative timeout", "server:\n  idle_timeout: -1s\n"},
		{"not yaml", "board: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected queens.Difficulty
		wantErr  bool
	}{
		{"easy", queens.Easy, false},
		{"Medium", queens.Medium, false},
		{" HARD ", queens.Hard, false},
		{"", queens.Easy, true},
		{"expert", queens.Easy, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestApplyBoard(t *testing.T) {
	cfg := DefaultSettings()

	if err := cfg.ApplyBoard(0, "medium"); err != nil {
		t.Fatalf("ApplyBoard() error: %v", err)
	}
	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatal(err)
	}
	if gc.BoardSize() != 8 || gc.Difficulty() != queens.Medium {
		t.Errorf("GameConfig() = %v, expected 8x8 medium", gc)
	}

	if err := cfg.ApplyBoard(13, ""); !errors.Is(err, queens.ErrBoardSize) {
		t.Errorf("ApplyBoard(13) error = %v, expected ErrBoardSize", err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("failed ApplyBoard must not change settings, size = %d", cfg.Board.Size)
	}
}
