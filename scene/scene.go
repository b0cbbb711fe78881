// Package scene owns the mutable charge and sensor collections edited by the host
// The field core never creates or destroys entities, it reads snapshots taken here
package scene

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/parameter/visual"
	"github.com/lixenwraith/vi-field/vmath"
)

var (
	// ErrNotFound is returned when an ID names no charge or sensor
	ErrNotFound = errors.New("scene: entity not found")

	// ErrInvalidValue is returned when a charge value edit cannot be parsed
	ErrInvalidValue = errors.New("scene: invalid charge value")
)

// Scene holds charges, sensors and the current selection
// Not safe for concurrent use, the host loop is the only writer and reader
type Scene struct {
	charges  []component.Charge
	sensors  []component.Sensor
	selected uuid.UUID
}

// New returns an empty scene
func New() *Scene {
	return &Scene{}
}

// Default returns the initial sandbox layout: +1 nC and -1 nC on a horizontal axis and one sensor
func Default() *Scene {
	s := New()
	s.AddCharge(1, r2.Vec{X: 300, Y: 350})
	s.AddCharge(-1, r2.Vec{X: 700, Y: 350})
	s.AddSensor(r2.Vec{X: 400, Y: 400})
	return s
}

// Seed builds a scene from charge values/positions and sensor positions
// IDs are assigned and colors derived from polarity, incoming IDs and colors are ignored
func Seed(charges []component.Charge, sensors []component.Sensor) *Scene {
	s := New()
	for _, c := range charges {
		s.AddCharge(c.Value, c.Position)
	}
	for _, sn := range sensors {
		s.AddSensor(sn.Position)
	}
	return s
}

// AddCharge places a new charge and returns its ID, color follows polarity
func (s *Scene) AddCharge(value float64, pos r2.Vec) uuid.UUID {
	c := component.Charge{
		ID:       uuid.New(),
		Value:    value,
		Position: pos,
		Color:    visual.PolarityColor(value),
	}
	s.charges = append(s.charges, c)
	return c.ID
}

// AddSensor places a new sensor and returns its ID
func (s *Scene) AddSensor(pos r2.Vec) uuid.UUID {
	sn := component.Sensor{ID: uuid.New(), Position: pos}
	s.sensors = append(s.sensors, sn)
	return sn.ID
}

// Remove deletes a charge or sensor, clears selection if it pointed at the removed entity
func (s *Scene) Remove(id uuid.UUID) error {
	for i := range s.charges {
		if s.charges[i].ID == id {
			s.charges = append(s.charges[:i], s.charges[i+1:]...)
			s.dropSelection(id)
			return nil
		}
	}
	for i := range s.sensors {
		if s.sensors[i].ID == id {
			s.sensors = append(s.sensors[:i], s.sensors[i+1:]...)
			s.dropSelection(id)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "remove %s", id)
}

// RemoveSelected deletes the selected entity, no-op without a selection
func (s *Scene) RemoveSelected() bool {
	if s.selected == uuid.Nil {
		return false
	}
	return s.Remove(s.selected) == nil
}

// Clear removes every charge and sensor
func (s *Scene) Clear() {
	s.charges = nil
	s.sensors = nil
	s.selected = uuid.Nil
}

func (s *Scene) dropSelection(id uuid.UUID) {
	if s.selected == id {
		s.selected = uuid.Nil
	}
}

// Charge returns the charge with id
func (s *Scene) Charge(id uuid.UUID) (*component.Charge, bool) {
	for i := range s.charges {
		if s.charges[i].ID == id {
			return &s.charges[i], true
		}
	}
	return nil, false
}

// Draggable returns the charge or sensor with id through its position capability
func (s *Scene) Draggable(id uuid.UUID) (component.Draggable, bool) {
	if c, ok := s.Charge(id); ok {
		return c, true
	}
	for i := range s.sensors {
		if s.sensors[i].ID == id {
			return &s.sensors[i], true
		}
	}
	return nil, false
}

// SetChargeValue updates a charge value and re-derives its polarity color
func (s *Scene) SetChargeValue(id uuid.UUID, value float64) error {
	c, ok := s.Charge(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "set value on %s", id)
	}
	c.Value = value
	c.Color = visual.PolarityColor(value)
	return nil
}

// SetChargeValueText parses a user-entered value in nC
// Non-numeric input is rejected and the prior value is kept
func (s *Scene) SetChargeValueText(id uuid.UUID, text string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return errors.Wrapf(ErrInvalidValue, "%q", text)
	}
	return s.SetChargeValue(id, v)
}

// AdjustSelectedValue adds delta to the selected charge value
func (s *Scene) AdjustSelectedValue(delta float64) error {
	c, ok := s.Charge(s.selected)
	if !ok {
		return errors.Wrap(ErrNotFound, "adjust selected value")
	}
	return s.SetChargeValue(c.ID, c.Value+delta)
}

// HitTest returns the entity under pos, charges take precedence over sensors
func (s *Scene) HitTest(pos r2.Vec) (uuid.UUID, bool) {
	for i := range s.charges {
		if vmath.Distance(pos, s.charges[i].Position) <= parameter.ChargeRadius*parameter.ChargeHitFactor {
			return s.charges[i].ID, true
		}
	}
	for i := range s.sensors {
		if vmath.Distance(pos, s.sensors[i].Position) <= parameter.SensorRadius*parameter.SensorHitFactor {
			return s.sensors[i].ID, true
		}
	}
	return uuid.Nil, false
}

// Select marks id as selected, uuid.Nil clears
func (s *Scene) Select(id uuid.UUID) error {
	if id == uuid.Nil {
		s.selected = uuid.Nil
		return nil
	}
	if _, ok := s.Draggable(id); !ok {
		return errors.Wrapf(ErrNotFound, "select %s", id)
	}
	s.selected = id
	return nil
}

// SelectAt selects whatever HitTest finds at pos, clearing the selection on a miss
func (s *Scene) SelectAt(pos r2.Vec) bool {
	id, ok := s.HitTest(pos)
	s.selected = id
	return ok
}

// SelectNext cycles selection through charges then sensors, wrapping to none
func (s *Scene) SelectNext() uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.charges)+len(s.sensors))
	for i := range s.charges {
		ids = append(ids, s.charges[i].ID)
	}
	for i := range s.sensors {
		ids = append(ids, s.sensors[i].ID)
	}

	next := 0
	for i, id := range ids {
		if id == s.selected {
			next = i + 1
			break
		}
	}
	if next >= len(ids) {
		s.selected = uuid.Nil
	} else {
		s.selected = ids[next]
	}
	return s.selected
}

// Selected returns the selected ID or uuid.Nil
func (s *Scene) Selected() uuid.UUID { return s.selected }

// MoveSelected moves the selected entity to pos
func (s *Scene) MoveSelected(pos r2.Vec) bool {
	d, ok := s.Draggable(s.selected)
	if !ok {
		return false
	}
	d.MoveTo(pos)
	return true
}

// Nudge offsets the selected entity by delta canvas units
func (s *Scene) Nudge(delta r2.Vec) bool {
	d, ok := s.Draggable(s.selected)
	if !ok {
		return false
	}
	d.MoveTo(r2.Add(d.Pos(), delta))
	return true
}

// Counts returns the number of charges and sensors
func (s *Scene) Counts() (charges, sensors int) {
	return len(s.charges), len(s.sensors)
}

// Snapshot returns copies of both collections, safe to hand to a renderer while the scene changes
func (s *Scene) Snapshot() ([]component.Charge, []component.Sensor) {
	charges := make([]component.Charge, len(s.charges))
	copy(charges, s.charges)
	sensors := make([]component.Sensor, len(s.sensors))
	copy(sensors, s.sensors)
	return charges, sensors
}
