package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/vmath"
)

func charge(value, x, y float64) component.Charge {
	return component.Charge{Value: value, Position: r2.Vec{X: x, Y: y}}
}

func TestRenderFieldGrid_NoCharges(t *testing.T) {
	assert.Empty(t, RenderFieldGrid(Size{W: 1000, H: 700}, 40, nil, 1, false))
	assert.Empty(t, RenderFieldGrid(Size{W: 1000, H: 700}, 40, []component.Charge{}, 1, true))
}

func TestRenderFieldGrid_InvalidSpacing(t *testing.T) {
	charges := []component.Charge{charge(1, 100, 100)}
	assert.Empty(t, RenderFieldGrid(Size{W: 400, H: 400}, 0, charges, 1, false))
	assert.Empty(t, RenderFieldGrid(Size{W: 400, H: 400}, -40, charges, 1, false))
}

func TestRenderFieldGrid_DenseLatticeIsBounded(t *testing.T) {
	charges := []component.Charge{charge(1, 500, 350)}

	assert.NotPanics(t, func() {
		assert.Empty(t, RenderFieldGrid(Size{W: 1000, H: 700}, 1e-6, charges, 1, false))
		assert.Empty(t, RenderFieldGrid(Size{W: 1000, H: 700}, 1e-300, charges, 1, false))
	})

	// Dense but within the sample cap still renders
	small := []component.Charge{charge(1, 0.5, 0.5)}
	arrows := RenderFieldGrid(Size{W: 1, H: 1}, 0.01, small, 1, false)
	assert.Empty(t, arrows, "every sample lies inside the exclusion radius")

	arrows = RenderFieldGrid(Size{W: 200, H: 200}, 0.5, []component.Charge{charge(1, 100, 100)}, 1, false)
	assert.NotEmpty(t, arrows)
}

func TestRenderFieldGrid_HandComputed(t *testing.T) {
	// Lattice {0,40}², the sample on the charge is excluded
	charges := []component.Charge{charge(1, 0, 0)}
	got := RenderFieldGrid(Size{W: 40, H: 40}, 40, charges, 1, false)

	axial := 8.99e9 * 1e-9 / 1600 * 1e7 // 56187.5, saturates
	diag := axial / 2                   // 28093.75
	diagLen := 8 + 20*diag/50000
	inv := 1 / math.Sqrt2

	want := []Arrow{
		NewArrow(ArrowGrid, r2.Vec{X: 0, Y: 40}, r2.Vec{X: 0, Y: 1}, 28, 6),
		NewArrow(ArrowGrid, r2.Vec{X: 40, Y: 0}, r2.Vec{X: 1, Y: 0}, 28, 6),
		NewArrow(ArrowGrid, r2.Vec{X: 40, Y: 40}, r2.Vec{X: inv, Y: inv}, diagLen, 6),
	}
	want[0].Strength = 1
	want[1].Strength = 1
	want[2].Strength = diag / 50000

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("RenderFieldGrid mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFieldGrid_ExcludesNearCharges(t *testing.T) {
	charges := []component.Charge{charge(2, 120, 120), charge(-1, 300, 200)}
	arrows := RenderFieldGrid(Size{W: 400, H: 280}, 40, charges, 1, false)
	require.NotEmpty(t, arrows)

	for _, a := range arrows {
		for _, c := range charges {
			assert.GreaterOrEqual(t, vmath.Distance(a.Start, c.Position), 24.0, "arrow at %v", a.Start)
		}
	}
	// 11×8 lattice, (120,120) and (280,200), (320,200) sit inside the exclusion radius of a charge
	assert.Len(t, arrows, 88-3)
}

func TestRenderFieldGrid_SkipsCancellation(t *testing.T) {
	charges := []component.Charge{charge(1, 100, 200), charge(1, 300, 200)}
	arrows := RenderFieldGrid(Size{W: 400, H: 400}, 40, charges, 1, false)

	starts := map[r2.Vec]bool{}
	for _, a := range arrows {
		starts[a.Start] = true
	}
	assert.False(t, starts[r2.Vec{X: 200, Y: 200}], "null point between positive charges must be suppressed")
	assert.True(t, starts[r2.Vec{X: 200, Y: 40}])
}

func TestRenderFieldGrid_ArrowGeometry(t *testing.T) {
	charges := []component.Charge{charge(1, 300, 350), charge(-1, 700, 350)}
	arrows := RenderFieldGrid(Size{W: 1000, H: 700}, 40, charges, 1, false)
	require.NotEmpty(t, arrows)

	cos30 := math.Cos(math.Pi / 6)
	for _, a := range arrows {
		assert.Equal(t, ArrowGrid, a.Kind)

		l := a.Length()
		assert.GreaterOrEqual(t, l, 6-1e-9)
		assert.LessOrEqual(t, l, 28+1e-9)

		dir := a.Direction()
		assert.Equal(t, a.End, a.Head[0])
		for _, back := range a.Head[1:] {
			edge := r2.Sub(a.Head[0], back)
			assert.InDelta(t, 6, vmath.Magnitude(edge), 1e-9)
			assert.InDelta(t, cos30, r2.Dot(vmath.Normalize(edge), dir), 1e-9)
		}
		assert.GreaterOrEqual(t, a.Strength, 0.0)
		assert.LessOrEqual(t, a.Strength, 1.0)
	}
}

func TestRenderFieldGrid_DirectionOnly(t *testing.T) {
	charges := []component.Charge{charge(1, 300, 350), charge(-3, 700, 350)}
	for _, a := range RenderFieldGrid(Size{W: 1000, H: 700}, 40, charges, 0.3, true) {
		assert.InDelta(t, 20, a.Length(), 1e-9)
	}
}

func TestRenderFieldGrid_ZeroScaleAtLowerBound(t *testing.T) {
	charges := []component.Charge{charge(5, 200, 200)}
	arrows := RenderFieldGrid(Size{W: 400, H: 400}, 40, charges, 0, false)
	require.NotEmpty(t, arrows)
	for _, a := range arrows {
		assert.InDelta(t, 8, a.Length(), 1e-9)
		assert.Equal(t, 0.0, a.Strength)
	}
}

func TestRenderFieldGrid_Idempotent(t *testing.T) {
	charges := []component.Charge{charge(1, 300, 350), charge(-1, 700, 350)}
	a := RenderFieldGrid(Size{W: 1000, H: 700}, 40, charges, 1, false)
	b := RenderFieldGrid(Size{W: 1000, H: 700}, 40, charges, 1, false)
	assert.Equal(t, a, b)
}

func TestRenderSensors(t *testing.T) {
	sensors := []component.Sensor{
		{Position: r2.Vec{X: 400, Y: 350}},
		{Position: r2.Vec{X: 500, Y: 350}},
	}

	// Zero field: no charges, no arrows
	assert.Empty(t, RenderSensors(sensors, nil, 1, 20, 200))

	charges := []component.Charge{charge(1, 300, 350), charge(-1, 700, 350)}
	arrows := RenderSensors(sensors, charges, 1, 20, 200)
	require.Len(t, arrows, 2)

	// Nearest is the positive charge at 100: base = 20000/110
	assert.InDelta(t, 20000.0/110, arrows[0].Length(), 1e-9)
	assert.InDelta(t, 1, arrows[0].Direction().X, 1e-9)
	assert.Equal(t, ArrowSensor, arrows[0].Kind)
	assert.InDelta(t, 15, vmath.Distance(arrows[0].Head[0], arrows[0].Head[1]), 1e-9)

	// Equidistant sensor: the first charge in the list wins ties
	assert.InDelta(t, 20000.0/210, arrows[1].Length(), 1e-9)
}

func TestReadSensors_ZeroFieldHasNoArrow(t *testing.T) {
	// Midway between equal positive charges the field vanishes exactly
	charges := []component.Charge{charge(1, 0, 0), charge(1, 100, 0)}
	readings := ReadSensors([]component.Sensor{{Position: r2.Vec{X: 50}}}, charges, 1, 20, 200)

	require.Len(t, readings, 1)
	assert.False(t, readings[0].HasArrow)
	assert.Equal(t, 0.0, readings[0].Magnitude)
}
