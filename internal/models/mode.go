package models

import "fmt"

// Mode is the per-target default polarity governing which exported methods
// enter the generated overrides interface when no per-method marker is present.
type Mode int

const (
	// ModeIncludeAll includes every exported method unless marked with skip.
	// This is the default when the annotation carries no -All parameter.
	ModeIncludeAll Mode = iota
	// ModeExcludeAll includes only methods explicitly marked with overwrite.
	ModeExcludeAll
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeIncludeAll:
		return "include-all"
	case ModeExcludeAll:
		return "exclude-all"
	default:
		return "unknown"
	}
}

// Marker is a per-method annotation that flips the inclusion decision
// relative to the active mode.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerSkip
	MarkerOverwrite
)

// String returns the string representation of the marker
func (m Marker) String() string {
	switch m {
	case MarkerSkip:
		return "skip"
	case MarkerOverwrite:
		return "overwrite"
	default:
		return "none"
	}
}

// InclusionError reports a marker whose polarity contradicts the active mode.
// A skip marker under exclude-all (or overwrite under include-all) would be a
// silent no-op masking author intent, so it is rejected instead of ignored.
type InclusionError struct {
	Mode   Mode
	Marker Marker
}

// Error implements the error interface
func (e *InclusionError) Error() string {
	return fmt.Sprintf("overgen::%s marker is a no-op under %s mode", e.Marker, e.Mode)
}

// ResolveInclusion decides whether a method enters the generated interface.
// The decision is a pure function of (mode, marker): the mode supplies the
// default and a correctly-polarized marker flips it. A marker that matches the
// mode's default polarity is an InclusionError rather than a silent no-op.
func ResolveInclusion(mode Mode, marker Marker) (bool, error) {
	switch mode {
	case ModeIncludeAll:
		switch marker {
		case MarkerNone:
			return true, nil
		case MarkerSkip:
			return false, nil
		default:
			return false, &InclusionError{Mode: mode, Marker: marker}
		}
	case ModeExcludeAll:
		switch marker {
		case MarkerNone:
			return false, nil
		case MarkerOverwrite:
			return true, nil
		default:
			return false, &InclusionError{Mode: mode, Marker: marker}
		}
	default:
		return false, fmt.Errorf("unknown mode: %d", mode)
	}
}
