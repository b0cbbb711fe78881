package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridArrowLength_Bounds(t *testing.T) {
	magnitudes := []float64{0, 1, 1e3, 25000, 5e4, 1e6, 1e12}
	scales := []float64{-1, 0, 0.1, 0.5, 1, 2}
	spacings := []float64{10, 40, 75}

	for _, s := range spacings {
		for _, fs := range scales {
			for _, m := range magnitudes {
				got := GridArrowLength(m, fs, s, false)
				assert.GreaterOrEqual(t, got, 0.15*s-1e-12, "m=%v scale=%v spacing=%v", m, fs, s)
				assert.LessOrEqual(t, got, 0.7*s+1e-12, "m=%v scale=%v spacing=%v", m, fs, s)
			}
		}
	}
}

func TestGridArrowLength_Interpolation(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		scale     float64
		want      float64
	}{
		{"zero field sits at minimum", 0, 1, 8},
		{"half norm", 25000, 1, 18},
		{"full norm saturates", 50000, 1, 28},
		{"beyond norm stays saturated", 9e9, 1, 28},
		{"scale doubles strength", 12500, 2, 18},
		{"negative scale hits floor", 50000, -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GridArrowLength(tt.magnitude, tt.scale, 40, false), 1e-9)
		})
	}
}

func TestGridArrowLength_ZeroScaleNeverCollapses(t *testing.T) {
	for _, m := range []float64{0, 10, 5e4, 1e9} {
		got := GridArrowLength(m, 0, 40, false)
		assert.InDelta(t, 8, got, 1e-12)
		assert.Greater(t, got, 0.0)
	}
}

func TestGridArrowLength_DirectionOnly(t *testing.T) {
	for _, m := range []float64{0, 1, 5e4, 1e9} {
		for _, fs := range []float64{0, 0.1, 2} {
			assert.Equal(t, 20.0, GridArrowLength(m, fs, 40, true))
		}
	}
}

func TestSensorArrowLength_Positive(t *testing.T) {
	tests := []struct {
		dist float64
		want float64
	}{
		{0, 200},   // saturates
		{90, 200},  // exactly at saturation
		{190, 100}, // 200·100/200
		{390, 50},  // 200·100/400
		{1990, 10}, // 200·100/2000, at the floor
		{1e6, 10},  // below the floor
	}

	for _, tt := range tests {
		got := SensorArrowLength(tt.dist, 1, 1, 20, 200)
		assert.InDelta(t, tt.want, got, 1e-9, "dist=%v", tt.dist)
	}
}

func TestSensorArrowLength_NegativeDamping(t *testing.T) {
	// Right on a negative charge the arrow shrinks to minLen instead of saturating
	assert.InDelta(t, 20, SensorArrowLength(0, -1, 1, 20, 200), 1e-9)

	// d = 100: base = 20000/110, f = 0.5
	base := 20000.0 / 110
	assert.InDelta(t, 20+(base-20)*0.5, SensorArrowLength(100, -1, 1, 20, 200), 1e-9)

	// Past the damping distance the negative branch matches the positive one
	assert.InDelta(t, SensorArrowLength(400, 1, 1, 20, 200), SensorArrowLength(400, -1, 1, 20, 200), 1e-9)

	// Near the charge, negative readouts are shorter than positive ones
	assert.Less(t, SensorArrowLength(30, -1, 1, 20, 200), SensorArrowLength(30, 1, 1, 20, 200))
}

func TestSensorArrowLength_FieldScale(t *testing.T) {
	assert.InDelta(t, 200, SensorArrowLength(190, 1, 2, 20, 200), 1e-9)
	assert.InDelta(t, 50, SensorArrowLength(190, 1, 0.5, 20, 200), 1e-9)
}

func TestSensorArrowLength_Floor(t *testing.T) {
	distances := []float64{0, 1, 10, 50, 199, 200, 1000, 1e6}
	scales := []float64{0, 0.1, 0.5, 1, 2}

	for _, d := range distances {
		for _, sign := range []float64{-1, 1} {
			for _, fs := range scales {
				got := SensorArrowLength(d, sign, fs, 20, 200)
				assert.GreaterOrEqual(t, got, 10.0, "d=%v sign=%v scale=%v", d, sign, fs)
			}
		}
	}
}
