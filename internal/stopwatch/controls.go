package stopwatch

// Control identifies one button on the control surface.
type Control int

const (
	ControlStart Control = iota
	ControlStop
	ControlReset
	ControlLap
)

// String returns the button label.
func (c Control) String() string {
	switch c {
	case ControlStart:
		return "start"
	case ControlStop:
		return "stop"
	case ControlReset:
		return "reset"
	case ControlLap:
		return "lap"
	default:
		return "unknown"
	}
}

// VisibleControls returns the buttons shown for s, in display order.
func VisibleControls(s State) []Control {
	if s.Ticking {
		return []Control{ControlStop, ControlLap}
	}
	if s.AtZero() {
		return []Control{ControlStart}
	}
	return []Control{ControlStart, ControlReset}
}

// IsVisible reports whether c is on the control surface for s.
func IsVisible(s State, c Control) bool {
	for _, v := range VisibleControls(s) {
		if v == c {
			return true
		}
	}
	return false
}

// Apply runs the transition behind a button press.
func Apply(s State, c Control) State {
	switch c {
	case ControlStart:
		return ApplyStart(s)
	case ControlStop:
		return ApplyStop(s)
	case ControlReset:
		return ApplyReset(s)
	case ControlLap:
		return ApplyLap(s)
	default:
		return s
	}
}
