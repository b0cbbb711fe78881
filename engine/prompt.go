package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// valuePrompt collects a typed charge value in the status bar
type valuePrompt struct {
	target uuid.UUID
	text   []rune
}

// openPrompt starts editing the selected charge value
func (e *Engine) openPrompt() {
	ch, ok := e.scene.Charge(e.scene.Selected())
	if !ok {
		e.status = "select a charge first"
		return
	}
	e.prompt = &valuePrompt{target: ch.ID}
	e.status = e.promptStatus()
}

func (e *Engine) promptStatus() string {
	return "value (nC): " + string(e.prompt.text) + "_"
}

// handlePromptKey edits the prompt line, Enter applies and Esc cancels
// Unparseable input keeps the charge value unchanged
func (e *Engine) handlePromptKey(ev *tcell.EventKey) (redraw, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false, true
	case tcell.KeyEscape:
		e.prompt = nil
		e.status = ""
	case tcell.KeyEnter:
		p := e.prompt
		e.prompt = nil
		if err := e.scene.SetChargeValueText(p.target, string(p.text)); err != nil {
			e.logger.Debug("value rejected", zap.Error(err))
			e.status = "invalid value"
			return true, false
		}
		e.status = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(e.prompt.text); n > 0 {
			e.prompt.text = e.prompt.text[:n-1]
		}
		e.status = e.promptStatus()
	case tcell.KeyRune:
		e.prompt.text = append(e.prompt.text, ev.Rune())
		e.status = e.promptStatus()
	default:
		return false, false
	}
	return true, false
}
