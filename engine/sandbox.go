// Package engine runs the interactive sandbox loop
// A single loop goroutine owns the scene and paints; a pump goroutine only forwards terminal events
package engine

import (
	"context"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-field/audio"
	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/render"
	"github.com/lixenwraith/vi-field/scene"
)

// errQuit ends the loop on a user quit request
var errQuit = errors.New("quit")

// Sound is the probe output driven by the first sensor reading
type Sound interface {
	Start() error
	SetMuted(muted bool)
	SetLevel(level float64)
	Click(positive bool)
	Close()
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger attaches a logger, default is no-op
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSound attaches a probe output, default is silent
func WithSound(s Sound) Option {
	return func(e *Engine) { e.sound = s }
}

// Engine couples the scene, display settings and render pipeline to a terminal
type Engine struct {
	screen       tcell.Screen
	scene        *scene.Scene
	settings     render.Settings
	orchestrator *render.RenderOrchestrator
	logger       *zap.Logger
	sound        Sound

	status string
	prompt *valuePrompt // Non-nil while a charge value is being typed
	frame  render.RenderContext
}

// New creates an engine on an initialized screen
func New(screen tcell.Screen, sc *scene.Scene, settings render.Settings, opts ...Option) *Engine {
	e := &Engine{
		screen:       screen,
		scene:        sc,
		settings:     settings,
		orchestrator: render.NewDefaultOrchestrator(screen),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.settings.Sound {
		e.enableSound()
	}
	return e
}

// Scene returns the owned scene, only safe to touch from the loop goroutine or after Run returns
func (e *Engine) Scene() *scene.Scene { return e.scene }

// Settings returns current display settings
func (e *Engine) Settings() render.Settings { return e.settings }

// Status returns the transient status message
func (e *Engine) Status() string { return e.status }

// Frame returns the last rendered frame context
func (e *Engine) Frame() *render.RenderContext { return &e.frame }

// Run paints the first frame and processes events until quit, context cancellation or screen shutdown
// The screen is finalized before Run returns
func (e *Engine) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() (err error) {
		defer e.screen.Fini()
		defer e.closeSound()
		// Surface panics as errors so the caller prints them on a restored terminal
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("loop panic", zap.Any("value", r))
				err = errors.Errorf("engine panic: %v\n%s", r, debug.Stack())
			}
		}()
		return e.loop(gctx, events)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		e.logger.Info("sandbox stopped")
		return nil
	}
	return err
}

func (e *Engine) loop(ctx context.Context, events <-chan tcell.Event) error {
	e.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return errQuit
			}
			redraw, quit := e.HandleEvent(ev)
			if quit {
				return errQuit
			}
			if redraw {
				e.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event, reporting whether a repaint or quit is needed
func (e *Engine) HandleEvent(ev tcell.Event) (redraw, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.orchestrator.Resize()
		w, h := ev.Size()
		e.logger.Debug("resize", zap.Int("cols", w), zap.Int("rows", h))
		return true, false
	case *tcell.EventKey:
		return e.HandleKey(ev)
	}
	return false, false
}

// Draw renders a frame from a fresh scene snapshot and updates the probe tone
func (e *Engine) Draw() {
	charges, sensors := e.scene.Snapshot()
	e.frame = render.RenderContext{
		Charges:  charges,
		Sensors:  sensors,
		Settings: e.settings,
		Selected: e.scene.Selected(),
		Status:   e.status,
	}
	e.orchestrator.RenderFrame(&e.frame)

	if e.sound != nil && e.settings.Sound {
		level := 0.0
		if len(e.frame.Readings) > 0 {
			level = audio.LevelFor(e.frame.Readings[0].Magnitude)
		}
		e.sound.SetLevel(level)
	}
}

func (e *Engine) enableSound() {
	if e.sound == nil {
		e.settings.Sound = false
		e.status = "sound unavailable"
		return
	}
	if err := e.sound.Start(); err != nil {
		e.logger.Warn("sound disabled", zap.Error(err))
		e.settings.Sound = false
		e.status = "sound unavailable"
		return
	}
	e.sound.SetMuted(false)
	e.settings.Sound = true
}

func (e *Engine) disableSound() {
	if e.sound != nil {
		e.sound.SetMuted(true)
	}
	e.settings.Sound = false
}

func (e *Engine) closeSound() {
	if e.sound != nil {
		e.sound.Close()
	}
}
