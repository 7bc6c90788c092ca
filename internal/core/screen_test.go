package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColor(1, 2, '█', ColorRed)
	if c := s.GetCell(1, 2); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 2) = %+v", c)
	}

	// Out of bounds is ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#', ColorGray)
	s.Clear()

	if strings.Trim(s.String(), " \n") != "" {
		t.Errorf("screen not cleared:\n%s", s.String())
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 0, "Hello")
	if got := s.Row(0); got != "  Hello   " {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawTextColor(7, 1, "World", ColorGreen)
	if got := s.Row(1); got != "       Wor" {
		t.Errorf("text should clip at the right edge, Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorGreen {
		t.Error("DrawTextColor should color every cell")
	}

	s.DrawTextCentered(2, "ab", ColorWhite)
	if got := s.Row(2); got != "    ab    " {
		t.Errorf("centered Row(2) = %q", got)
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextCentered(0, "»◊", ColorDefault)
	if s.Get(2, 0) != '»' || s.Get(3, 0) != '◊' {
		t.Errorf("runes misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '▓', ColorYellow)

	expected := []string{
		"      ",
		" ▓▓▓  ",
		" ▓▓▓  ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}

	// Partly off-screen rects clip
	s.DrawRect(NewRect(4, -2, 5, 3), '#', ColorDefault)
	if s.Row(0) != "    ##" {
		t.Errorf("clipped rect Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("box =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'X')

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("resize should discard content")
	}
	s.Set(7, 2, 'Y')
	if s.Get(7, 2) != 'Y' {
		t.Error("new area should be writable")
	}

	s.Resize(-5, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative size should clamp to 0, got width %d", s.Width())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
