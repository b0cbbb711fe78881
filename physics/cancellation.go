package physics

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
)

// IsNearCancellation reports whether point lies where two or more positive charges
// mutually cancel: |Σ Eᵢ| < CancellationRatio · mean(|Eᵢ|) over positive sources only
// Negative charges never participate
func IsNearCancellation(point r2.Vec, charges []component.Charge) bool {
	positives := 0
	for i := range charges {
		if charges[i].IsPositive() {
			positives++
		}
	}
	if positives < parameter.CancellationMinSources {
		return false
	}

	var resultant r2.Vec
	mags := make([]float64, 0, positives)
	for i := range charges {
		if !charges[i].IsPositive() {
			continue
		}
		c, ok := Contribution(point, &charges[i])
		if !ok {
			continue
		}
		resultant = r2.Add(resultant, c)
		mags = append(mags, r2.Norm(c))
	}
	if len(mags) < parameter.CancellationMinSources {
		return false
	}

	mean := stat.Mean(mags, nil)
	return r2.Norm(resultant) < parameter.CancellationRatio*mean
}
