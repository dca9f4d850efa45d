package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	w, h := s.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = (%d, %d), expected (80, 24)", w, h)
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 5)
	s.FillRect(2, 1, 3, 2, Fill{Rune: '#', Color: ColorRed})

	expected := []string{
		"          ",
		"  ###     ",
		"  ###     ",
		"          ",
		"          ",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if c := s.GetCell(2, 1); c.Color != ColorRed {
		t.Errorf("GetCell(2, 1).Color = %v, expected ColorRed", c.Color)
	}

	// Sub-cell rectangles still cover one cell.
	s.FillRect(0.2, 4.1, 0.5, 0.5, Fill{Rune: '.'})
	if s.Get(0, 4) != '.' {
		t.Errorf("Get(0, 4) = %q, expected '.'", s.Get(0, 4))
	}
}

func TestScreenFillRectDimKeepsContent(t *testing.T) {
	s := NewScreen(4, 1)
	s.FillText(0, 0, "abcd", ColorGreen, AlignLeft)
	s.FillRect(0, 0, 4, 1, Fill{Dim: true})

	if s.Row(0) != "abcd" {
		t.Errorf("Dim fill changed content: %q", s.Row(0))
	}
	for x := 0; x < 4; x++ {
		c := s.GetCell(x, 0)
		if !c.Dim || c.Color != ColorGreen {
			t.Errorf("GetCell(%d, 0) = %+v, expected dim green", x, c)
		}
	}
}

func TestScreenTranslateSaveRestore(t *testing.T) {
	s := NewScreen(10, 3)

	s.Save()
	s.Translate(-5, 0)
	s.FillText(6, 0, "A", ColorDefault, AlignLeft) // lands at cell 1
	s.Save()
	s.Translate(0, 1)
	s.FillText(6, 0, "B", ColorDefault, AlignLeft) // lands at (1, 1)
	s.Restore()
	s.FillText(7, 0, "C", ColorDefault, AlignLeft) // back to first translation
	s.Restore()
	s.FillText(0, 2, "D", ColorDefault, AlignLeft) // no translation

	if s.Get(1, 0) != 'A' || s.Get(1, 1) != 'B' || s.Get(2, 0) != 'C' || s.Get(0, 2) != 'D' {
		t.Errorf("unexpected screen:\n%s", s.String())
	}

	// Unmatched Restore falls back to identity.
	s.Translate(3, 0)
	s.Restore()
	s.Clear()
	s.FillText(0, 0, "E", ColorDefault, AlignLeft)
	if s.Get(0, 0) != 'E' {
		t.Errorf("expected identity translation after unmatched Restore:\n%s", s.String())
	}
}

func TestScreenFillTextAlign(t *testing.T) {
	s := NewScreen(11, 3)
	s.FillText(5.5, 0, "abc", ColorDefault, AlignCenter)
	s.FillText(11, 1, "end", ColorDefault, AlignRight)

	if got := strings.TrimSpace(s.Row(0)); got != "abc" || s.Get(4, 0) != 'a' {
		t.Errorf("centered row = %q", s.Row(0))
	}
	if s.Row(1) != "        end" {
		t.Errorf("right-aligned row = %q", s.Row(1))
	}
}

func TestScreenDrawImage(t *testing.T) {
	s := NewScreen(6, 3)
	s.FillRect(0, 0, 6, 3, Fill{Rune: '.'})

	img := &Image{Rows: []string{"o ", "/|\\"}, Color: ColorCyan}
	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("Image size = %dx%d, expected 3x2", img.Width(), img.Height())
	}
	s.DrawImage(img, 1, 1)

	if s.Row(1) != ".o...." {
		t.Errorf("Row(1) = %q (spaces must be transparent)", s.Row(1))
	}
	if s.Row(2) != "./|\\.." {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
	if s.GetCell(1, 1).Color != ColorCyan {
		t.Error("sprite color not applied")
	}

	s.DrawImage(nil, 0, 0) // must not panic
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize(3, 3) gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content cut by shrinking must not come back")
	}
}

func TestScreenDrawBoxAndString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3)

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}
