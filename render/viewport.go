package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/parameter"
)

// Viewport maps canvas units onto terminal cells
// Canvas origin is the top-left cell, Y grows downward in both spaces
type Viewport struct {
	Cols, Rows int     // Drawable cells, status rows excluded
	CellW      float64 // Canvas units per column
	CellH      float64 // Canvas units per row
}

// NewViewport builds a viewport for a terminal of width x height cells
func NewViewport(width, height int) Viewport {
	rows := height - parameter.BottomMargin
	if rows < 0 {
		rows = 0
	}
	if width < 0 {
		width = 0
	}
	return Viewport{
		Cols:  width,
		Rows:  rows,
		CellW: parameter.CellWidth,
		CellH: parameter.CellHeight,
	}
}

// CanvasSize returns the canvas extent covered by the drawable cells
func (v Viewport) CanvasSize() Size {
	return Size{W: float64(v.Cols) * v.CellW, H: float64(v.Rows) * v.CellH}
}

// CellOf returns the cell containing canvas point p
func (v Viewport) CellOf(p r2.Vec) (col, row int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// CenterOf returns the canvas point at the center of a cell
func (v Viewport) CenterOf(col, row int) r2.Vec {
	return r2.Vec{X: (float64(col) + 0.5) * v.CellW, Y: (float64(row) + 0.5) * v.CellH}
}

// Contains reports whether a cell lies in the drawable area
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// Center returns the canvas midpoint
func (v Viewport) Center() r2.Vec {
	s := v.CanvasSize()
	return r2.Vec{X: s.W / 2, Y: s.H / 2}
}
