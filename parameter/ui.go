package parameter

// Field scale control
const (
	// FieldScaleDefault is the initial global arrow multiplier
	FieldScaleDefault = 1.0

	// FieldScaleMin and FieldScaleMax bound the user-adjustable multiplier
	FieldScaleMin = 0.1
	FieldScaleMax = 2.0

	// FieldScaleStep is the per-keypress increment
	FieldScaleStep = 0.1
)

// Canvas to terminal mapping
const (
	// CellWidth and CellHeight are canvas units covered by one terminal cell
	// Terminal glyphs are roughly twice as tall as they are wide
	CellWidth  = 8.0
	CellHeight = 16.0

	// BottomMargin reserves the status bar row
	BottomMargin = 1
)

// Scene editing
const (
	// ChargeStep is the value change per keypress on the selected charge, in nC
	ChargeStep = 1.0

	// NewChargeValue is the magnitude of charges added from the keyboard, in nC
	NewChargeValue = 1.0

	// NudgeCells is how many cells an arrow key moves the selection
	NudgeCells = 1
)

// Event loop
const (
	// EventQueueSize is the capacity of the input pump channel
	EventQueueSize = 64
)

// Probe tone
const (
	// ProbeSampleRate is the audio output rate in Hz
	ProbeSampleRate = 44100

	// ProbeFreqLow and ProbeFreqHigh span the tone for zero and saturated fields
	ProbeFreqLow  = 220.0
	ProbeFreqHigh = 880.0

	// ProbeVolume is the peak amplitude of the probe tone
	ProbeVolume = 0.2

	// ProbeGlide is the per-sample smoothing factor toward the target frequency
	ProbeGlide = 0.001
)
