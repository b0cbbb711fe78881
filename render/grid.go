package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/physics"
	"github.com/lixenwraith/vi-field/vmath"
)

// Size is canvas extent in canvas units
type Size struct {
	W, H float64
}

// RenderFieldGrid samples the field on a lattice of step gridSpacing covering size and
// returns one arrow per visible sample. Samples are skipped when they sit within
// 2·ChargeRadius of a charge, lie in a positive-charge cancellation zone, or see an exactly
// zero field. Lattices above GridMaxSamples points yield no arrows. Stateless: every call
// recomputes from scratch
func RenderFieldGrid(size Size, gridSpacing float64, charges []component.Charge, fieldScale float64, directionOnly bool) []Arrow {
	if len(charges) == 0 || gridSpacing <= 0 {
		return nil
	}

	// Counts are bounded in float space before int conversion, NaN extents fail the check
	xSteps := math.Floor(size.W / gridSpacing)
	ySteps := math.Floor(size.H / gridSpacing)
	if !(xSteps >= 0 && ySteps >= 0 && (xSteps+1)*(ySteps+1) <= parameter.GridMaxSamples) {
		return nil
	}
	xCount, yCount := int(xSteps), int(ySteps)
	exclusion := parameter.ChargeRadius * parameter.GridExclusionFactor

	var arrows []Arrow
	for x := 0; x <= xCount; x++ {
		for y := 0; y <= yCount; y++ {
			p := r2.Vec{X: float64(x) * gridSpacing, Y: float64(y) * gridSpacing}

			if nearAnyCharge(p, charges, exclusion) {
				continue
			}
			if physics.IsNearCancellation(p, charges) {
				continue
			}

			field := physics.ComputeField(p, charges)
			if vmath.IsZero(field) {
				continue
			}

			mag := vmath.Magnitude(field)
			dir := r2.Scale(1/mag, field)
			length := GridArrowLength(mag, fieldScale, gridSpacing, directionOnly)

			a := NewArrow(ArrowGrid, p, dir, length, parameter.GridArrowHeadSize)
			a.Strength = gridStrength(mag, fieldScale)
			arrows = append(arrows, a)
		}
	}
	return arrows
}

func nearAnyCharge(p r2.Vec, charges []component.Charge, radius float64) bool {
	for i := range charges {
		if vmath.Distance(p, charges[i].Position) < radius {
			return true
		}
	}
	return false
}
