package visual

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette colors, hex sourced for go-colorful blending
var (
	HexPositive    = "#FF0000" // Red
	HexNegative    = "#00BFFF" // Deep sky blue
	HexSensor      = "#FFFF00" // Yellow
	HexSensorArrow = "#FF0000"
	HexGridArrowLo = "#4A4A4A" // Weak field, arrows fade toward background
	HexGridArrowHi = "#C8C8C8" // Strong field
	HexGridLine    = "#2E2E2E"
	HexBackground  = "#000000"
	HexLabel       = "#FFFFFF"
	HexSelection   = "#FFFF00"
	HexStatusBar   = "#1E1E1E"
	HexStatusText  = "#C8C8C8"
)

// Parsed palette
var (
	Positive    = mustHex(HexPositive)
	Negative    = mustHex(HexNegative)
	Sensor      = mustHex(HexSensor)
	SensorArrow = mustHex(HexSensorArrow)
	GridArrowLo = mustHex(HexGridArrowLo)
	GridArrowHi = mustHex(HexGridArrowHi)
	GridLine    = mustHex(HexGridLine)
	Background  = mustHex(HexBackground)
	Label       = mustHex(HexLabel)
	Selection   = mustHex(HexSelection)
	StatusBar   = mustHex(HexStatusBar)
	StatusText  = mustHex(HexStatusText)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToTcell converts a colorful color to a 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// PolarityColor returns the display color for a charge value, zero counts as positive
func PolarityColor(value float64) tcell.Color {
	if value >= 0 {
		return ToTcell(Positive)
	}
	return ToTcell(Negative)
}

// GridArrowColor blends grid arrow color by normalized field strength in [0,1]
func GridArrowColor(strength float64) tcell.Color {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	return ToTcell(GridArrowLo.BlendLab(GridArrowHi, strength))
}
