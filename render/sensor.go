package render

import (
	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/physics"
	"github.com/lixenwraith/vi-field/vmath"
)

// SensorReading is the field seen by one sensor
type SensorReading struct {
	Sensor    component.Sensor
	Magnitude float64
	Arrow     Arrow
	HasArrow  bool // False when the field at the sensor is exactly zero
}

// ReadSensors computes the field at each sensor and its readout arrow
// Arrow length follows the sensor policy keyed on the single nearest charge
func ReadSensors(sensors []component.Sensor, charges []component.Charge, fieldScale, minLen, maxLen float64) []SensorReading {
	readings := make([]SensorReading, 0, len(sensors))
	for _, s := range sensors {
		r := SensorReading{Sensor: s}

		field := physics.ComputeField(s.Position, charges)
		if vmath.IsZero(field) {
			readings = append(readings, r)
			continue
		}
		r.Magnitude = vmath.Magnitude(field)

		idx, dist := physics.NearestCharge(s.Position, charges)
		if idx >= 0 {
			length := SensorArrowLength(dist, charges[idx].Sign(), fieldScale, minLen, maxLen)
			r.Arrow = NewArrow(ArrowSensor, s.Position, vmath.Normalize(field), length, parameter.SensorArrowHeadSize)
			r.HasArrow = true
		}
		readings = append(readings, r)
	}
	return readings
}

// RenderSensors returns readout arrows for sensors seeing a non-zero field
func RenderSensors(sensors []component.Sensor, charges []component.Charge, fieldScale, minLen, maxLen float64) []Arrow {
	var arrows []Arrow
	for _, r := range ReadSensors(sensors, charges, fieldScale, minLen, maxLen) {
		if r.HasArrow {
			arrows = append(arrows, r.Arrow)
		}
	}
	return arrows
}
