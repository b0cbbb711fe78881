package component

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sensor is a field probe, it holds no field state
// The field at its position is recomputed on every frame
type Sensor struct {
	ID       uuid.UUID
	Position r2.Vec
}

// Pos returns canvas position
func (s *Sensor) Pos() r2.Vec { return s.Position }

// MoveTo sets canvas position
func (s *Sensor) MoveTo(p r2.Vec) { s.Position = p }
