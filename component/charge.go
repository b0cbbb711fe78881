package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Charge is a point electric charge on the canvas
// Value is in nanocoulombs, its sign sets polarity
// Color tracks polarity and is kept in sync by whoever edits Value
type Charge struct {
	ID       uuid.UUID
	Value    float64
	Position r2.Vec
	Color    tcell.Color
}

// Pos returns canvas position
func (c *Charge) Pos() r2.Vec { return c.Position }

// MoveTo sets canvas position
func (c *Charge) MoveTo(p r2.Vec) { c.Position = p }

// Sign returns -1 for negative charges and 1 otherwise
func (c *Charge) Sign() float64 {
	if c.Value < 0 {
		return -1
	}
	return 1
}

// IsPositive reports a strictly positive value
func (c *Charge) IsPositive() bool { return c.Value > 0 }
