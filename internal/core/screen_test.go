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
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorCyan)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColor(2, 2, '#', ColorRed)
	s.Resize(20, 10)

	if cell := s.GetCell(2, 2); cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("Resize lost content, got %+v", cell)
	}
	if s.Get(15, 8) != ' ' {
		t.Error("New area should be blank")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical reversed", 2, 4, 2, 1, [][2]int{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 5, 5, 5, 5, [][2]int{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorWhite)
			for _, c := range tc.cells {
				if s.Get(c[0], c[1]) != '*' {
					t.Errorf("expected '*' at (%d, %d)", c[0], c[1])
				}
			}
			if got := strings.Count(s.String(), "*"); got != len(tc.cells) {
				t.Errorf("drew %d cells, expected %d", got, len(tc.cells))
			}
		})
	}
}

func TestFitProjection(t *testing.T) {
	// 100x50 cells holds a square world at 2:1 aspect exactly.
	p := Fit(750, 100, 50)
	x, y := p.Point(V(0, 0))
	if x != 0 || y != 0 {
		t.Errorf("origin maps to (%d, %d), expected (0, 0)", x, y)
	}
	x, y = p.Point(V(749.9, 749.9))
	if x != 99 || y != 49 {
		t.Errorf("far corner maps to (%d, %d), expected (99, 49)", x, y)
	}

	// A wide terminal letterboxes horizontally.
	p = Fit(750, 200, 50)
	if p.OffsetX != 50 || p.OffsetY != 0 {
		t.Errorf("offsets = (%d, %d), expected (50, 0)", p.OffsetX, p.OffsetY)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('x')
	s.DrawBox(NewRect(1, 1, 5, 4), ColorYellow)

	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(3, 2) != ' ' {
		t.Errorf("Box interior should be blanked, got %q", s.Get(3, 2))
	}
}
