package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
)

// Contribution returns the field a single charge produces at point
// ok is false when point sits within SingularityEpsilon of the charge, the term is skipped
// Magnitude: k·q·1e-9/r² scaled by FieldVisualMultiplier, direction: away from the charge for q > 0
func Contribution(point r2.Vec, charge *component.Charge) (field r2.Vec, ok bool) {
	dx := point.X - charge.Position.X
	dy := point.Y - charge.Position.Y
	distSq := dx*dx + dy*dy
	dist := math.Sqrt(distSq)
	if dist < parameter.SingularityEpsilon {
		return r2.Vec{}, false
	}

	mag := parameter.CoulombK * charge.Value * parameter.NanoCoulomb / distSq
	mag *= parameter.FieldVisualMultiplier

	return r2.Vec{X: mag * dx / dist, Y: mag * dy / dist}, true
}

// ComputeField returns the superposed field at point
// Singular contributions are skipped individually, an empty or fully skipped set yields zero
// Pure: charges are not modified
func ComputeField(point r2.Vec, charges []component.Charge) r2.Vec {
	var field r2.Vec
	for i := range charges {
		c, ok := Contribution(point, &charges[i])
		if !ok {
			continue
		}
		field.X += c.X
		field.Y += c.Y
	}
	return field
}

// NearestCharge returns index and distance of the charge closest to point
// Returns -1 and +Inf for an empty set
func NearestCharge(point r2.Vec, charges []component.Charge) (idx int, dist float64) {
	idx = -1
	dist = math.Inf(1)
	for i := range charges {
		dx := point.X - charges[i].Position.X
		dy := point.Y - charges[i].Position.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d < dist {
			dist = d
			idx = i
		}
	}
	return idx, dist
}
