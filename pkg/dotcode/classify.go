package dotcode

import "github.com/a17hq/btviz/pkg/behaviour"

// Node shapes understood by the rendering backends.
const (
	ShapeBox     = "box"
	ShapeEllipse = "ellipse"
)

// Fill colours keyed by behaviour type.
const (
	colorSequence = "#ff9900"
	colorSelector = "#808080"
)

// Fill colours keyed by runtime status.
const (
	colorInvalid = "#e4e4e4"
	colorRunning = "#000000"
	colorSuccess = "#00ff00"
	colorFailure = "#ff0000"
)

// EdgeColorDefault is the edge colour for children that are invalid or
// whose status has no colour of its own.
const EdgeColorDefault = "#e0e0e0"

// TypeShape maps a behaviour type to its node shape.
// Unknown types fall back to a box rather than erroring.
func TypeShape(t behaviour.Type) string {
	switch t {
	case behaviour.TypeSequence:
		return ShapeBox
	case behaviour.TypeBehaviour, behaviour.TypeSelector:
		return ShapeEllipse
	default:
		return ShapeBox
	}
}

// TypeColor maps a behaviour type to a fill colour.
// Returns "" when the backend default should be used.
func TypeColor(t behaviour.Type) string {
	switch t {
	case behaviour.TypeSequence:
		return colorSequence
	case behaviour.TypeSelector:
		return colorSelector
	default:
		return ""
	}
}

// StatusColor maps a runtime status to a fill colour.
// Returns "" when the backend default should be used.
func StatusColor(s behaviour.Status) string {
	switch s {
	case behaviour.StatusInvalid:
		return colorInvalid
	case behaviour.StatusRunning:
		return colorRunning
	case behaviour.StatusSuccess:
		return colorSuccess
	case behaviour.StatusFailure:
		return colorFailure
	default:
		return ""
	}
}

// NodeColor returns the effective fill colour for a behaviour: the status
// colour when present, else the type colour, else "" for the backend
// default.
func NodeColor(b behaviour.Behaviour) string {
	if c := StatusColor(b.Status); c != "" {
		return c
	}
	return TypeColor(b.Type)
}

// EdgeColor returns the colour for an edge into a child with the given
// status. Invalid keeps the default; unknown statuses do too.
func EdgeColor(s behaviour.Status) string {
	switch s {
	case behaviour.StatusRunning:
		return colorRunning
	case behaviour.StatusSuccess:
		return colorSuccess
	case behaviour.StatusFailure:
		return colorFailure
	default:
		return EdgeColorDefault
	}
}
