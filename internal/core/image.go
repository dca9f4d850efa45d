package core

import "unicode/utf8"

// Image is a small ASCII sprite. Rows are drawn top to bottom; spaces are
// transparent so the sprite can sit on top of other cells.
type Image struct {
	Name  string
	Rows  []string
	Color Color
}

// Width returns the widest row in runes.
func (img *Image) Width() int {
	w := 0
	for _, row := range img.Rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return len(img.Rows)
}
