package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_SeedsIdleState(t *testing.T) {
	laps := []int{5, 10}
	s := New(1, laps)

	require.Equal(t, 1, s.Seconds)
	require.False(t, s.Running())
	require.Equal(t, []int{5, 10}, s.Laps)

	laps[0] = 99
	require.Equal(t, 5, s.Laps[0], "New should copy initial laps")
}

func TestNew_ClampsNegativeInput(t *testing.T) {
	s := New(-3, []int{-1, 4})
	require.Equal(t, 0, s.Seconds)
	require.Equal(t, []int{0, 4}, s.Laps)
}

func TestApplyStart_IsIdempotent(t *testing.T) {
	s := ApplyStart(New(0, nil))
	require.True(t, s.Running())

	again := ApplyStart(s)
	require.Equal(t, s, again)
}

func TestApplyStop_TwiceStaysIdle(t *testing.T) {
	s := ApplyStop(ApplyStop(ApplyStart(New(7, nil))))
	require.False(t, s.Running())
	require.Equal(t, 7, s.Seconds)
}

func TestApplyReset_FromEitherMode(t *testing.T) {
	running := State{Seconds: 12, Ticking: true, Laps: []int{3, 9}}
	idle := State{Seconds: 12, Laps: []int{3}}

	for name, s := range map[string]State{"running": running, "idle": idle} {
		t.Run(name, func(t *testing.T) {
			got := ApplyReset(s)
			require.Equal(t, 0, got.Seconds)
			require.False(t, got.Running())
			require.Empty(t, got.Laps)
		})
	}
}

func TestApplyLap_RunningAppendsWithoutMutatingInput(t *testing.T) {
	prev := State{Seconds: 4, Ticking: true, Laps: make([]int, 1, 8)}
	prev.Laps[0] = 2

	next := ApplyLap(prev)
	require.Equal(t, []int{2, 4}, next.Laps)
	require.Equal(t, []int{2}, prev.Laps)

	// appending to the old slice must not show through the new one
	_ = append(prev.Laps, 100)
	require.Equal(t, []int{2, 4}, next.Laps)
}

func TestApplyLap_IdleIsIgnored(t *testing.T) {
	s := State{Seconds: 4, Laps: []int{1}}
	require.Equal(t, s, ApplyLap(s))
}

func TestApplyDelete(t *testing.T) {
	cases := []struct {
		name  string
		laps  []int
		index int
		want  []int
	}{
		{"middle keeps order", []int{5, 10, 15}, 1, []int{5, 15}},
		{"first", []int{5, 10, 15}, 0, []int{10, 15}},
		{"last", []int{5, 10, 15}, 2, []int{5, 10}},
		{"duplicates remove one", []int{4, 4, 4}, 1, []int{4, 4}},
		{"only lap", []int{4}, 0, nil},
		{"negative ignored", []int{5, 10}, -1, []int{5, 10}},
		{"past end ignored", []int{5, 10}, 2, []int{5, 10}},
		{"empty ignored", nil, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := append([]int(nil), tc.laps...)
			s := State{Seconds: 20, Laps: tc.laps}

			got := ApplyDelete(s, tc.index)
			require.Equal(t, tc.want, got.Laps)
			require.Equal(t, before, tc.laps, "input laps must not change")
		})
	}
}

func TestApplyTick(t *testing.T) {
	require.Equal(t, 5, ApplyTick(State{Seconds: 4, Ticking: true}).Seconds)
	require.Equal(t, 4, ApplyTick(State{Seconds: 4}).Seconds)
}

func TestLapCountOnlyChangesThroughLapDeleteReset(t *testing.T) {
	s := New(0, nil)
	steps := []struct {
		name  string
		apply func(State) State
		delta int
	}{
		{"lap while idle", ApplyLap, 0},
		{"start", ApplyStart, 0},
		{"tick", ApplyTick, 0},
		{"lap", ApplyLap, 1},
		{"tick", ApplyTick, 0},
		{"lap", ApplyLap, 1},
		{"stop", ApplyStop, 0},
		{"delete out of range", func(s State) State { return ApplyDelete(s, 9) }, 0},
		{"delete first", func(s State) State { return ApplyDelete(s, 0) }, -1},
		{"start", ApplyStart, 0},
		{"lap", ApplyLap, 1},
		{"reset", ApplyReset, -2},
	}
	for _, step := range steps {
		before := len(s.Laps)
		s = step.apply(s)
		require.Len(t, s.Laps, max(before+step.delta, 0), step.name)
	}
}

func TestScenario_InitialOneSecond(t *testing.T) {
	s := New(1, nil)
	require.Equal(t, "0:01", FormatTime(s.Seconds))
	// time on the clock already exposes reset
	require.Equal(t, []Control{ControlStart, ControlReset}, VisibleControls(s))

	s = ApplyStart(s)
	for range 3 {
		s = ApplyTick(s)
	}
	require.Equal(t, 4, s.Seconds)
	require.Equal(t, "0:04", FormatTime(s.Seconds))
	require.Equal(t, []Control{ControlStop, ControlLap}, VisibleControls(s))

	s = ApplyLap(s)
	require.Equal(t, []int{4}, s.Laps)

	s = ApplyStop(s)
	s = ApplyTick(s)
	require.Equal(t, 4, s.Seconds)

	s = ApplyDelete(s, 0)
	require.Empty(t, s.Laps)
	require.Equal(t, []Control{ControlStart, ControlReset}, VisibleControls(s))

	s = ApplyReset(s)
	require.Equal(t, 0, s.Seconds)
	require.Equal(t, []Control{ControlStart}, VisibleControls(s))
}
