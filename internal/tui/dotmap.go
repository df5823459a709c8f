package tui

import "strings"

// dotBits maps a dot's (column, row) inside one terminal cell to its bit in
// the U+2800 braille block.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// dotMap is the minimap canvas: cols x rows terminal cells, each holding a
// 2x4 dot mask.
type dotMap struct {
	cols, rows int
	masks      []uint8
}

func newDotMap(cols, rows int) *dotMap {
	return &dotMap{cols: cols, rows: rows, masks: make([]uint8, cols*rows)}
}

// dotsWide and dotsHigh are the canvas size in dots.
func (d *dotMap) dotsWide() int { return d.cols * 2 }
func (d *dotMap) dotsHigh() int { return d.rows * 4 }

// mark sets the dot at (dx, dy). Dots off the canvas are dropped.
func (d *dotMap) mark(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= d.dotsWide() || dy >= d.dotsHigh() {
		return
	}
	d.masks[(dy/4)*d.cols+dx/2] |= dotBits[dx%2][dy%4]
}

// frame outlines the viewport spanning two corner dots.
func (d *dotMap) frame(x0, y0, x1, y1 int) {
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)
	for x := x0; x <= x1; x++ {
		d.mark(x, y0)
		d.mark(x, y1)
	}
	for y := y0 + 1; y < y1; y++ {
		d.mark(x0, y)
		d.mark(x1, y)
	}
}

func (d *dotMap) String() string {
	var b strings.Builder
	for r := 0; r < d.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, mask := range d.masks[r*d.cols : (r+1)*d.cols] {
			if mask == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(0x2800 + rune(mask))
		}
	}
	return b.String()
}
