package engine

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/vmath"
)

// HandleKey maps a key press to a scene or settings change
func (e *Engine) HandleKey(ev *tcell.EventKey) (redraw, quit bool) {
	if e.prompt != nil {
		return e.handlePromptKey(ev)
	}
	e.status = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, true
	case tcell.KeyTab:
		e.scene.SelectNext()
		return true, false
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return e.removeSelected(), false
	case tcell.KeyUp:
		return e.nudge(0, -1), false
	case tcell.KeyDown:
		return e.nudge(0, 1), false
	case tcell.KeyLeft:
		return e.nudge(-1, 0), false
	case tcell.KeyRight:
		return e.nudge(1, 0), false
	case tcell.KeyRune:
	default:
		return false, false
	}

	switch ev.Rune() {
	case 'q':
		return false, true
	case '+', '=':
		e.adjustScale(parameter.FieldScaleStep)
	case '-', '_':
		e.adjustScale(-parameter.FieldScaleStep)
	case 'd':
		e.settings.DirectionOnly = !e.settings.DirectionOnly
	case 'f':
		e.settings.ShowField = !e.settings.ShowField
	case 'g':
		e.settings.ShowGrid = !e.settings.ShowGrid
	case 'v':
		e.settings.ShowValues = !e.settings.ShowValues
	case 'm':
		if e.settings.Sound {
			e.disableSound()
		} else {
			e.enableSound()
		}
	case 'p':
		e.addCharge(parameter.NewChargeValue)
	case 'n':
		e.addCharge(-parameter.NewChargeValue)
	case 's':
		id := e.scene.AddSensor(e.center())
		_ = e.scene.Select(id)
		e.logger.Debug("sensor added", zap.Stringer("id", id))
	case '[':
		e.adjustValue(-parameter.ChargeStep)
	case ']':
		e.adjustValue(parameter.ChargeStep)
	case 'e':
		e.openPrompt()
	case 'x':
		return e.removeSelected(), false
	case 'c':
		e.scene.Clear()
		e.logger.Debug("scene cleared")
	default:
		return false, false
	}
	return true, false
}

// adjustScale steps the field scale within bounds, rounding away float drift
func (e *Engine) adjustScale(delta float64) {
	s := vmath.Clamp(e.settings.FieldScale+delta, parameter.FieldScaleMin, parameter.FieldScaleMax)
	e.settings.FieldScale = math.Round(s*10) / 10
}

func (e *Engine) addCharge(value float64) {
	id := e.scene.AddCharge(value, e.center())
	_ = e.scene.Select(id)
	if e.sound != nil && e.settings.Sound {
		e.sound.Click(value >= 0)
	}
	e.logger.Debug("charge added", zap.Stringer("id", id), zap.Float64("value", value))
}

func (e *Engine) adjustValue(delta float64) {
	if err := e.scene.AdjustSelectedValue(delta); err != nil {
		e.status = "select a charge first"
		return
	}
	if ch, ok := e.scene.Charge(e.scene.Selected()); ok {
		e.logger.Debug("charge value", zap.Stringer("id", ch.ID), zap.Float64("value", ch.Value))
	}
}

func (e *Engine) removeSelected() bool {
	if !e.scene.RemoveSelected() {
		e.status = "nothing selected"
	}
	return true
}

func (e *Engine) nudge(dx, dy float64) bool {
	step := r2.Vec{
		X: dx * parameter.CellWidth * parameter.NudgeCells,
		Y: dy * parameter.CellHeight * parameter.NudgeCells,
	}
	return e.scene.Nudge(step)
}

// center returns the middle of the visible canvas, where new entities appear
func (e *Engine) center() r2.Vec {
	return e.orchestrator.Canvas().Viewport().Center()
}
