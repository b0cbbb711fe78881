package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter/visual"
)

func defaultContext() *RenderContext {
	pos := charge(1, 300, 350)
	pos.ID = uuid.New()
	pos.Color = visual.PolarityColor(1)
	neg := charge(-1, 700, 350)
	neg.ID = uuid.New()
	neg.Color = visual.PolarityColor(-1)

	return &RenderContext{
		Charges:  []component.Charge{pos, neg},
		Sensors:  []component.Sensor{{ID: uuid.New(), Position: r2.Vec{X: 400, Y: 400}}},
		Settings: DefaultSettings(),
	}
}

func rowText(screen tcell.Screen, row int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for col := 0; col < w; col++ {
		sb.WriteRune(runeAt(screen, col, row))
	}
	return sb.String()
}

func TestRenderFrame_DefaultScene(t *testing.T) {
	screen := newSimScreen(t, 125, 45)
	o := NewDefaultOrchestrator(screen)
	ctx := defaultContext()

	o.RenderFrame(ctx)

	assert.Equal(t, '+', runeAt(screen, 37, 21))
	assert.Equal(t, '-', runeAt(screen, 87, 21))
	assert.Equal(t, '●', runeAt(screen, 50, 25))

	_, _, style, _ := screen.GetContent(37, 21)
	_, bg, _ := style.Decompose()
	assert.Equal(t, visual.PolarityColor(1), bg)

	assert.Greater(t, ctx.Stats.GridArrows, 0)
	assert.Equal(t, 1, ctx.Stats.SensorArrows)
	assert.Len(t, ctx.Readings, 1)

	assert.Contains(t, rowText(screen, 22), "1 nC")
	assert.Contains(t, rowText(screen, 44), "scale 1.0")
	assert.Contains(t, rowText(screen, 44), "2 charges 1 sensors")
}

func TestRenderFrame_Toggles(t *testing.T) {
	screen := newSimScreen(t, 125, 45)
	o := NewDefaultOrchestrator(screen)
	ctx := defaultContext()
	ctx.Settings.ShowField = false
	ctx.Settings.ShowValues = false
	ctx.Settings.ShowGrid = false

	o.RenderFrame(ctx)

	assert.Equal(t, 0, ctx.Stats.GridArrows)
	assert.Equal(t, 1, ctx.Stats.SensorArrows, "sensors ignore the field toggle")
	assert.NotContains(t, rowText(screen, 22), "nC")
	assert.NotEqual(t, '┼', runeAt(screen, 0, 0))

	ctx.Settings.ShowGrid = true
	o.RenderFrame(ctx)
	assert.Equal(t, '┼', runeAt(screen, 0, 0))
}

func TestRenderFrame_Selection(t *testing.T) {
	screen := newSimScreen(t, 125, 45)
	o := NewDefaultOrchestrator(screen)
	ctx := defaultContext()
	ctx.Selected = ctx.Charges[1].ID

	o.RenderFrame(ctx)

	assert.Equal(t, '[', runeAt(screen, 85, 21))
	assert.Equal(t, ']', runeAt(screen, 89, 21))
}

func TestRenderFrame_Empty(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	o := NewDefaultOrchestrator(screen)
	ctx := &RenderContext{Settings: DefaultSettings()}

	o.RenderFrame(ctx)
	assert.Equal(t, 0, ctx.Stats.GridArrows)
	assert.Equal(t, 0, ctx.Stats.SensorArrows)
}

func TestRegisterOrder(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	o := NewRenderOrchestrator(screen)

	o.Register(&StatusRenderer{}, PriorityUI)
	o.Register(&GridLineRenderer{}, PriorityGrid)
	o.Register(&FieldRenderer{}, PriorityField)
	o.Register(&ChargeRenderer{}, PriorityGrid)

	var got []RenderPriority
	for _, e := range o.renderers {
		got = append(got, e.priority)
	}
	assert.Equal(t, []RenderPriority{PriorityGrid, PriorityGrid, PriorityField, PriorityUI}, got)
	_, isGrid := o.renderers[0].renderer.(*GridLineRenderer)
	assert.True(t, isGrid, "equal priorities keep registration order")
}

func TestFormatCharge(t *testing.T) {
	assert.Equal(t, "1 nC", FormatCharge(1))
	assert.Equal(t, "2.5 nC", FormatCharge(-2.5))
	assert.Equal(t, "0 nC", FormatCharge(0))
}

func TestChargeRenderer_Glyph(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	c := NewCanvas(screen)

	zero := charge(0, 80, 32)
	zero.Color = visual.PolarityColor(0)
	pos := charge(2, 160, 32)
	neg := charge(-2, 240, 32)
	ctx := &RenderContext{Charges: []component.Charge{zero, pos, neg}}

	(&ChargeRenderer{}).Render(ctx, c)

	assert.Equal(t, '-', runeAt(screen, 10, 2), "zero shows the non-positive glyph")
	assert.Equal(t, '+', runeAt(screen, 20, 2))
	assert.Equal(t, '-', runeAt(screen, 30, 2))
}
