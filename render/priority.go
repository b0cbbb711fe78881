package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGrid
	PriorityField
	PrioritySensorArrow
	PriorityCharge
	PrioritySensor
	PriorityLabel
	PrioritySelection
	PriorityUI
)
