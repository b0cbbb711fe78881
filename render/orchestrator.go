package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-field/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		canvas:    NewCanvas(screen),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard sandbox layers
func NewDefaultOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&GridLineRenderer{}, PriorityGrid)
	o.Register(&FieldRenderer{}, PriorityField)
	o.Register(&SensorArrowRenderer{}, PrioritySensorArrow)
	o.Register(&ChargeRenderer{}, PriorityCharge)
	o.Register(&SensorRenderer{}, PrioritySensor)
	o.Register(&LabelRenderer{}, PriorityLabel)
	o.Register(&SelectionRenderer{}, PrioritySelection)
	o.Register(&StatusRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Canvas returns the raster target
func (o *RenderOrchestrator) Canvas() *Canvas { return o.canvas }

// Resize picks up new screen dimensions and forces a full repaint
func (o *RenderOrchestrator) Resize() {
	o.canvas.Resize()
	o.canvas.Screen().Sync()
}

// RenderFrame executes the pipeline: clear, render all visible layers, show
func (o *RenderOrchestrator) RenderFrame(ctx *RenderContext) {
	screen := o.canvas.Screen()
	ctx.View = o.canvas.Viewport()
	ctx.Stats = FrameStats{}
	ctx.Readings = nil

	bg := tcell.StyleDefault.Background(visual.ToTcell(visual.Background))
	screen.SetStyle(bg)
	screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	screen.Show()
}
