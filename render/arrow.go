package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/vmath"
)

// ArrowKind separates background grid arrows from sensor readouts
type ArrowKind uint8

const (
	ArrowGrid ArrowKind = iota
	ArrowSensor
)

// Arrow is a drawable primitive: shaft from Start to End plus a filled triangular head
// Head[0] is the tip (End), Head[1] and Head[2] are the back vertices at ±30° off the shaft
type Arrow struct {
	Kind     ArrowKind
	Start    r2.Vec
	End      r2.Vec
	Head     [3]r2.Vec
	Strength float64 // Normalized [0,1] magnitude for color ramps, grid arrows only
}

// NewArrow builds an arrow from start along unit direction dir
func NewArrow(kind ArrowKind, start, dir r2.Vec, length, headSize float64) Arrow {
	end := r2.Add(start, r2.Scale(length, dir))
	return Arrow{
		Kind:  kind,
		Start: start,
		End:   end,
		Head:  arrowHead(end, dir, headSize),
	}
}

// arrowHead returns tip and back vertices for a head of the given side length
func arrowHead(tip, dir r2.Vec, size float64) [3]r2.Vec {
	left := vmath.Rotate(dir, -parameter.ArrowHeadHalfAngle)
	right := vmath.Rotate(dir, parameter.ArrowHeadHalfAngle)
	return [3]r2.Vec{
		tip,
		r2.Sub(tip, r2.Scale(size, left)),
		r2.Sub(tip, r2.Scale(size, right)),
	}
}

// Direction returns the unit shaft direction
func (a Arrow) Direction() r2.Vec {
	return vmath.Normalize(r2.Sub(a.End, a.Start))
}

// Length returns shaft length
func (a Arrow) Length() float64 {
	return vmath.Distance(a.Start, a.End)
}
