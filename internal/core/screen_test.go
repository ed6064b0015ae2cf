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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', Red)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).FG != Red {
		t.Errorf("GetCell(5, 5).FG = %v, expected red", s.GetCell(5, 5).FG)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', White)
	s.Set(100, 0, 'A', White)
	s.Set(0, -1, 'A', White)
	s.Set(0, 100, 'A', White)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillSetsBackground(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X', White)
	s.Fill(Red)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.BG != Red {
				t.Errorf("After Fill, expected red blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Background() != Red {
		t.Errorf("Background() = %v, expected red", s.Background())
	}

	// Clear keeps the last background
	s.Set(2, 2, 'Y', White)
	s.Clear()
	if c := s.GetCell(2, 2); c.Rune != ' ' || c.BG != Red {
		t.Errorf("After Clear, expected red blank, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillRect(NewRect(0, 1, 20, 1), Red)
	s.DrawText(2, 1, "Hello", White)

	expected := "Hello"
	for i, ch := range expected {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Rune)
		}
		if c.BG != Red {
			t.Errorf("DrawText should keep the cell background at (%d, 1)", 2+i)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", White)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), White)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).BG != White {
				t.Errorf("FillRect: expected white at (%d, %d)", x, y)
			}
		}
	}

	if s.GetCell(1, 1).BG != Black {
		t.Error("FillRect should not affect outside area")
	}
	if s.GetCell(5, 5).BG != Black {
		t.Error("FillRect should not affect outside area")
	}

	// Partially off-screen rects are clipped
	s.FillRect(NewRect(8, 8, 5, 5), Red)
	if s.GetCell(9, 9).BG != Red {
		t.Error("FillRect should paint the visible part of a clipped rect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", White)
	s.DrawText(0, 1, "BBBBB", White)
	s.DrawText(0, 2, "CCCCC", White)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", White)
	s.DrawText(0, 5, "World", White)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", White)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
