package render

import (
	"math"

	"github.com/lixenwraith/vi-field/parameter"
)

// GridArrowLength maps a raw field magnitude to a background arrow length
// Output stays within [0.15, 0.7]·gridSpacing, direction-only mode pins it at 0.5·gridSpacing
func GridArrowLength(magnitude, fieldScale, gridSpacing float64, directionOnly bool) float64 {
	if directionOnly {
		return gridSpacing * parameter.GridArrowDirectionFactor
	}

	minLen := gridSpacing * parameter.GridArrowMinFactor
	maxLen := gridSpacing * parameter.GridArrowMaxFactor
	floor := gridSpacing * parameter.GridArrowFloorFactor

	n := math.Min(1, magnitude/parameter.GridMagnitudeNorm*fieldScale)
	length := minLen + (maxLen-minLen)*n
	if length < floor {
		length = floor
	}
	return length
}

// gridStrength is the normalized magnitude used for arrow color, clamped to [0,1]
func gridStrength(magnitude, fieldScale float64) float64 {
	n := magnitude / parameter.GridMagnitudeNorm * fieldScale
	if n < 0 {
		return 0
	}
	return math.Min(1, n)
}

// SensorArrowLength maps the distance to the nearest charge and its sign to a readout arrow length
// Inverse-distance falloff saturates at maxLen, near a negative charge the length is damped toward minLen
func SensorArrowLength(distance, nearestSign, fieldScale, minLen, maxLen float64) float64 {
	base := math.Min(maxLen, maxLen*parameter.SensorFalloffNumerator/(distance+parameter.SensorFalloffOffset))
	floor := minLen * parameter.SensorArrowFloorFactor

	var length float64
	if nearestSign < 0 {
		f := math.Min(1, distance/parameter.SensorNegativeDampingDistance)
		length = minLen + (base-minLen)*f
		length = math.Max(length, floor)
	} else {
		length = base
	}

	length *= fieldScale
	return math.Max(length, floor)
}
