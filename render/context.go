package render

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
)

// Settings are the user-adjustable display parameters passed into every frame
type Settings struct {
	FieldScale     float64
	DirectionOnly  bool
	ShowField      bool
	ShowGrid       bool
	ShowValues     bool
	Sound          bool
	GridSpacing    float64
	SensorArrowMin float64
	SensorArrowMax float64
}

// DefaultSettings mirrors the initial state of the sandbox
func DefaultSettings() Settings {
	return Settings{
		FieldScale:     parameter.FieldScaleDefault,
		ShowField:      true,
		ShowGrid:       true,
		ShowValues:     true,
		GridSpacing:    parameter.GridSpacing,
		SensorArrowMin: parameter.SensorArrowMin,
		SensorArrowMax: parameter.SensorArrowMax,
	}
}

// FrameStats counts primitives emitted during a frame
type FrameStats struct {
	GridArrows   int
	SensorArrows int
}

// RenderContext carries the read-only snapshot and settings for one frame
// Renderers fill Stats and Readings as side outputs
type RenderContext struct {
	Charges  []component.Charge
	Sensors  []component.Sensor
	Settings Settings
	Selected uuid.UUID // uuid.Nil when nothing is selected
	Status   string    // Transient message for the status bar

	// Set by the orchestrator from the canvas
	View Viewport

	Stats    FrameStats
	Readings []SensorReading
}
