package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/parameter/visual"
)

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(visual.ToTcell(visual.Background))
}

// GridLineRenderer draws the faint background lattice
type GridLineRenderer struct{}

func (r *GridLineRenderer) IsVisible(ctx *RenderContext) bool { return ctx.Settings.ShowGrid }

func (r *GridLineRenderer) Render(ctx *RenderContext, c *Canvas) {
	spacing := ctx.Settings.GridSpacing
	if spacing <= 0 {
		return
	}
	style := fg(visual.ToTcell(visual.GridLine))
	view := c.Viewport()
	size := view.CanvasSize()

	cols := map[int]bool{}
	for x := 0.0; x < size.W; x += spacing {
		col, _ := view.CellOf(canvasPoint(x, 0))
		cols[col] = true
	}
	rows := map[int]bool{}
	for y := 0.0; y < size.H; y += spacing {
		_, row := view.CellOf(canvasPoint(0, y))
		rows[row] = true
	}

	for row := 0; row < view.Rows; row++ {
		for col := 0; col < view.Cols; col++ {
			switch {
			case cols[col] && rows[row]:
				c.Set(col, row, glyphGridCross, style)
			case cols[col]:
				c.Set(col, row, glyphGridV, style)
			case rows[row]:
				c.Set(col, row, glyphGridH, style)
			}
		}
	}
}

// FieldRenderer draws the sampled field arrows
type FieldRenderer struct{}

func (r *FieldRenderer) IsVisible(ctx *RenderContext) bool { return ctx.Settings.ShowField }

func (r *FieldRenderer) Render(ctx *RenderContext, c *Canvas) {
	s := ctx.Settings
	arrows := RenderFieldGrid(c.Viewport().CanvasSize(), s.GridSpacing, ctx.Charges, s.FieldScale, s.DirectionOnly)
	for _, a := range arrows {
		c.Arrow(a, fg(visual.GridArrowColor(a.Strength)))
	}
	ctx.Stats.GridArrows = len(arrows)
}

// SensorArrowRenderer draws sensor readouts and records readings for the label layer
type SensorArrowRenderer struct{}

func (r *SensorArrowRenderer) Render(ctx *RenderContext, c *Canvas) {
	s := ctx.Settings
	ctx.Readings = ReadSensors(ctx.Sensors, ctx.Charges, s.FieldScale, s.SensorArrowMin, s.SensorArrowMax)

	style := fg(visual.ToTcell(visual.SensorArrow)).Bold(true)
	for _, rd := range ctx.Readings {
		if !rd.HasArrow {
			continue
		}
		c.Arrow(rd.Arrow, style)
		ctx.Stats.SensorArrows++
	}
}

// ChargeRenderer draws each charge as a three cell polarity blob
type ChargeRenderer struct{}

func (r *ChargeRenderer) Render(ctx *RenderContext, c *Canvas) {
	view := c.Viewport()
	for _, ch := range ctx.Charges {
		col, row := view.CellOf(ch.Position)
		style := tcell.StyleDefault.
			Foreground(visual.ToTcell(visual.Label)).
			Background(ch.Color).
			Bold(true)

		glyph := glyphNegative
		if ch.Value > 0 {
			glyph = glyphPositive
		}
		c.Set(col-1, row, ' ', style)
		c.Set(col, row, glyph, style)
		c.Set(col+1, row, ' ', style)
	}
}

// SensorRenderer draws sensor dots over their arrows
type SensorRenderer struct{}

func (r *SensorRenderer) Render(ctx *RenderContext, c *Canvas) {
	view := c.Viewport()
	style := fg(visual.ToTcell(visual.Sensor))
	for _, s := range ctx.Sensors {
		col, row := view.CellOf(s.Position)
		c.Set(col, row, glyphSensor, style)
	}
}

// LabelRenderer draws charge values below charges and field magnitude next to sensors
type LabelRenderer struct{}

func (r *LabelRenderer) IsVisible(ctx *RenderContext) bool { return ctx.Settings.ShowValues }

func (r *LabelRenderer) Render(ctx *RenderContext, c *Canvas) {
	view := c.Viewport()
	style := fg(visual.ToTcell(visual.Label))

	for _, ch := range ctx.Charges {
		col, row := view.CellOf(ch.Position)
		c.TextCentered(col, row+1, FormatCharge(ch.Value), style)
	}
	for _, rd := range ctx.Readings {
		if rd.Magnitude == 0 {
			continue
		}
		col, row := view.CellOf(rd.Sensor.Position)
		c.Text(col+2, row, fmt.Sprintf("%.0f", rd.Magnitude), fg(visual.ToTcell(visual.Sensor)))
	}
}

// FormatCharge renders a charge magnitude label, sign is carried by color
func FormatCharge(value float64) string {
	return fmt.Sprintf("%g nC", math.Abs(value))
}

// SelectionRenderer brackets the selected entity
type SelectionRenderer struct{}

func (r *SelectionRenderer) Render(ctx *RenderContext, c *Canvas) {
	if ctx.Selected == uuid.Nil {
		return
	}
	view := c.Viewport()
	style := fg(visual.ToTcell(visual.Selection)).Bold(true)

	for _, ch := range ctx.Charges {
		if ch.ID == ctx.Selected {
			col, row := view.CellOf(ch.Position)
			c.Set(col-2, row, '[', style)
			c.Set(col+2, row, ']', style)
			return
		}
	}
	for _, s := range ctx.Sensors {
		if s.ID == ctx.Selected {
			col, row := view.CellOf(s.Position)
			c.Set(col-1, row, '[', style)
			c.Set(col+1, row, ']', style)
			return
		}
	}
}

// StatusRenderer draws the bottom status bar
type StatusRenderer struct{}

func (r *StatusRenderer) Render(ctx *RenderContext, c *Canvas) {
	w, h := c.Screen().Size()
	if h == 0 {
		return
	}
	row := h - 1
	style := tcell.StyleDefault.
		Foreground(visual.ToTcell(visual.StatusText)).
		Background(visual.ToTcell(visual.StatusBar))
	for col := 0; col < w; col++ {
		c.SetRaw(col, row, ' ', style)
	}

	col := 1
	for _, ch := range StatusLine(ctx) {
		c.SetRaw(col, row, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}

// StatusLine summarizes settings and scene counts
func StatusLine(ctx *RenderContext) string {
	s := ctx.Settings
	line := fmt.Sprintf("scale %.1f │ dir %s │ field %s │ grid %s │ values %s │ sound %s │ %d charges %d sensors",
		s.FieldScale, onOff(s.DirectionOnly), onOff(s.ShowField), onOff(s.ShowGrid), onOff(s.ShowValues), onOff(s.Sound),
		len(ctx.Charges), len(ctx.Sensors))
	if ctx.Status != "" {
		line += " │ " + ctx.Status
	}
	return line
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func canvasPoint(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }
