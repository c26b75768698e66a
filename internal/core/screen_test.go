package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'Q')
	if s.Get(5, 5) != 'Q' {
		t.Errorf("Get(5, 5) = %q, expected 'Q'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellKeepsColors(t *testing.T) {
	s := NewScreen(4, 4)
	want := Cell{Rune: '♛', FG: ColorRed, BG: ColorSquareDark}

	s.SetCell(1, 2, want)
	if got := s.GetCell(1, 2); got != want {
		t.Errorf("GetCell(1, 2) = %+v, expected %+v", got, want)
	}

	s.Clear()
	if got := s.GetCell(1, 2); got != blankCell {
		t.Errorf("after Clear GetCell(1, 2) = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(7, 1, "Queens", ColorYellow, ColorDefault)

	if got := s.Row(1); got != "       Que" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(8, 1).FG != ColorYellow {
		t.Error("DrawTextColor should set the foreground color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "WIN")

	if got := s.Row(0); got != "    WIN    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if s.GetCell(0, 0).FG != ColorGray {
		t.Error("box border should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'Q')
	s.Set(3, 0, 'X')

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'Q' {
		t.Error("Resize should preserve content inside the new bounds")
	}
	if s.Get(1, 2) != ' ' {
		t.Error("new rows should be blank")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
