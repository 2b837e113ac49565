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
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 10, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawHLine(0, 1, 4, '#', ColorGreen)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("after Clear got %q, expected only spaces", s.String())
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got[2:7] != "Hello" {
		t.Errorf("Row(1) = %q, expected Hello at column 2", got)
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "♥♥♥", ColorRed)

	// 3 runes in 11 columns start at 4
	if s.Get(4, 0) != '♥' || s.Get(6, 0) != '♥' || s.Get(7, 0) != ' ' {
		t.Errorf("Row(0) = %q, expected hearts centered", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorRed {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	tests := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{3, 1, '─'},
		{3, 4, '─'},
		{1, 2, '│'},
		{5, 3, '│'},
		{3, 2, ' '},
	}
	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.expected {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cde")

	if got, expected := s.String(), "ab \ncde"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
