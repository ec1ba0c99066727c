package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Unset cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes out of bounds are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, 'c', ColorYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'c' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected {c ColorYellow}", cell)
	}

	// Plain Set resets color to default
	s.Set(1, 1, 'd')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("Set should use default color, got %v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(0, 0, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '#' {
		t.Errorf("Resize should preserve content, Get(2, 2) = %q", got)
	}

	// Shrinking clips content
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("Get past shrunk bounds should be space, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "abcdef") // Clips at the right edge
	if got := s.Row(1); got != "       abc" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() rows = %q, %q", lines[0], lines[1])
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 4, 3)

	if s.Get(0, 0) != '┌' || s.Get(3, 0) != '┐' || s.Get(0, 2) != '└' || s.Get(3, 2) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(1, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("box edges not drawn")
	}
}
