package stopwatch

import "slices"

// State is the complete stopwatch state.
type State struct {
	Seconds int
	Ticking bool
	Laps    []int
}

// New returns an Idle state seeded with the given offset and laps. Negative
// values are clamped to zero. The laps slice is copied.
func New(initialSeconds int, initialLaps []int) State {
	s := State{Seconds: max(initialSeconds, 0)}
	if len(initialLaps) > 0 {
		s.Laps = make([]int, len(initialLaps))
		for i, lap := range initialLaps {
			s.Laps[i] = max(lap, 0)
		}
	}
	return s
}

// Running reports whether the stopwatch is ticking.
func (s State) Running() bool {
	return s.Ticking
}

// AtZero reports whether no time has elapsed.
func (s State) AtZero() bool {
	return s.Seconds == 0
}

// ApplyStart moves Idle to Running.
func ApplyStart(s State) State {
	if s.Ticking {
		return s
	}
	s.Ticking = true
	return s
}

// ApplyStop moves Running to Idle.
func ApplyStop(s State) State {
	s.Ticking = false
	return s
}

// ApplyReset returns to Idle with zero seconds and no laps, from either mode.
func ApplyReset(State) State {
	return State{}
}

// ApplyLap records the current seconds as a new lap while Running.
func ApplyLap(s State) State {
	if !s.Ticking {
		return s
	}
	laps := make([]int, len(s.Laps), len(s.Laps)+1)
	copy(laps, s.Laps)
	s.Laps = append(laps, s.Seconds)
	return s
}

// ApplyDelete removes the lap at the 0-based index. Indexes outside the lap
// list leave the state untouched.
func ApplyDelete(s State, index int) State {
	if index < 0 || index >= len(s.Laps) {
		return s
	}
	laps := slices.Clone(s.Laps)
	s.Laps = slices.Delete(laps, index, index+1)
	if len(s.Laps) == 0 {
		s.Laps = nil
	}
	return s
}

// ApplyTick advances a Running stopwatch by one second.
func ApplyTick(s State) State {
	if !s.Ticking {
		return s
	}
	s.Seconds++
	return s
}
