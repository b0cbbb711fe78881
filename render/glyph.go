package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Eight-way glyphs indexed by sector, counter-clockwise from +X with screen Y flipped
var (
	headGlyphs  = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	shaftGlyphs = [4]rune{'─', '╱', '│', '╲'}
)

// Grid line glyphs
const (
	glyphGridV     = '┆'
	glyphGridH     = '┄'
	glyphGridCross = '┼'
	glyphPositive  = '+'
	glyphNegative  = '-'
	glyphSensor    = '●'
)

// sector returns the 45° sector of a canvas-space direction
func sector(dir r2.Vec) int {
	a := math.Atan2(-dir.Y, dir.X)
	s := int(math.Round(a/(math.Pi/4))) % 8
	if s < 0 {
		s += 8
	}
	return s
}

// headGlyph returns the arrowhead rune for a direction
func headGlyph(dir r2.Vec) rune {
	return headGlyphs[sector(dir)]
}

// shaftGlyph returns the line rune for a direction, opposite directions share a glyph
func shaftGlyph(dir r2.Vec) rune {
	return shaftGlyphs[sector(dir)%4]
}
