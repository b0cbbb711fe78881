package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas rasterizes primitives onto a tcell screen through a viewport
type Canvas struct {
	screen tcell.Screen
	view   Viewport
}

// NewCanvas wraps a screen, the viewport is taken from the current screen size
func NewCanvas(screen tcell.Screen) *Canvas {
	w, h := screen.Size()
	return &Canvas{screen: screen, view: NewViewport(w, h)}
}

// Viewport returns the active mapping
func (c *Canvas) Viewport() Viewport { return c.view }

// Resize recomputes the viewport from the screen size
func (c *Canvas) Resize() {
	w, h := c.screen.Size()
	c.view = NewViewport(w, h)
}

// Screen returns the underlying screen
func (c *Canvas) Screen() tcell.Screen { return c.screen }

// Set writes one cell inside the drawable area, out of bounds writes are dropped
func (c *Canvas) Set(col, row int, r rune, style tcell.Style) {
	if !c.view.Contains(col, row) {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// SetRaw writes one cell anywhere on screen, used by the status bar
func (c *Canvas) SetRaw(col, row int, r rune, style tcell.Style) {
	w, h := c.screen.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// Fill paints every drawable cell with r
func (c *Canvas) Fill(r rune, style tcell.Style) {
	for row := 0; row < c.view.Rows; row++ {
		for col := 0; col < c.view.Cols; col++ {
			c.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// Text draws s starting at col, returns the column after the last glyph
func (c *Canvas) Text(col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(col, row, r, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

// TextCentered draws s centered on col
func (c *Canvas) TextCentered(col, row int, s string, style tcell.Style) {
	c.Text(col-runewidth.StringWidth(s)/2, row, s, style)
}

// Arrow rasterizes a primitive: Bresenham shaft in cell space with a direction glyph at the tip
// Sub-cell head geometry collapses to a single glyph
func (c *Canvas) Arrow(a Arrow, style tcell.Style) {
	dir := a.Direction()
	c0, r0 := c.view.CellOf(a.Start)
	c1, r1 := c.view.CellOf(a.End)

	shaft := shaftGlyph(dir)
	line(c0, r0, c1, r1, func(col, row int) {
		if col == c1 && row == r1 {
			return
		}
		c.Set(col, row, shaft, style)
	})
	c.Set(c1, r1, headGlyph(dir), style)
}

// line walks integer cells from (x0,y0) to (x1,y1) inclusive
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
