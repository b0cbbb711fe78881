package component

import "gonum.org/v1/gonum/spatial/r2"

// Draggable is any scene object exposing a mutable canvas position
type Draggable interface {
	Pos() r2.Vec
	MoveTo(p r2.Vec)
}

var (
	_ Draggable = (*Charge)(nil)
	_ Draggable = (*Sensor)(nil)
)
