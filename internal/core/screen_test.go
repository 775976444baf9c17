package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '@', ColorBrightYellow)

	got := s.GetCell(2, 1)
	if got.Rune != '@' || got.Color != ColorBrightYellow {
		t.Errorf("GetCell(2, 1) = %+v, expected '@' in bright yellow", got)
	}

	// Plain Set resets the color
	s.Set(2, 1, '#')
	if got := s.GetCell(2, 1); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out of bounds is ignored and reads as blank
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(6, 0, 'X', ColorRed)
	if s.GetCell(-1, 0) != blankCell || s.Get(6, 0) != ' ' {
		t.Error("out of bounds access should read as blank")
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "P1:42", ColorCyan)

	if s.Row(0) != "     P1:" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorCyan {
		t.Errorf("text color = %v, expected cyan", s.GetCell(6, 0).Color)
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ÄÖ")

	// Two runes in ten columns start at column 4
	if s.Get(4, 0) != 'Ä' || s.Get(5, 0) != 'Ö' {
		t.Errorf("Row(0) = %q, expected runes centered", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("String() = \n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenFillAndDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('.')
	s.DrawRect(NewRect(1, 1, 2, 2), '#')

	tests := []struct {
		x, y     int
		expected rune
	}{
		{0, 0, '.'},
		{1, 1, '#'},
		{2, 2, '#'},
		{3, 3, '.'},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.expected {
			t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "Bomb", ColorRed)

	s.Resize(3, 2)
	if s.Row(0) != "Bom" {
		t.Errorf("Row(0) after shrink = %q, expected %q", s.Row(0), "Bom")
	}

	s.Resize(12, 6)
	if !strings.HasPrefix(s.Row(0), "Bom ") {
		t.Errorf("Row(0) after grow = %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("color should survive resize")
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
