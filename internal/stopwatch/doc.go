// Package stopwatch holds the stopwatch state machine and the pure
// derivations the UI renders from it.
//
// # State
//
// A State has two modes: Idle (Ticking == false) and Running. It is a value
// type; every transition takes a State and returns a new one, so callers can
// keep the previous value around for change detection. Lap slices are never
// shared between the input and output of a transition.
//
// # Transitions
//
//   - ApplyStart: Idle → Running. No-op when already Running.
//   - ApplyStop: Running → Idle. No-op when Idle.
//   - ApplyReset: any → Idle with zero seconds and no laps.
//   - ApplyLap: appends the current seconds. Ignored while Idle.
//   - ApplyDelete: removes one lap by 0-based index. Out-of-range is ignored.
//   - ApplyTick: adds one second. Ignored while Idle.
//
// The tick source itself lives with whoever drives the state (the Bubble Tea
// model in package ui); this package only decides what a tick does.
//
// # Derivations
//
//   - FormatTime: seconds to M:SS text.
//   - VisibleControls: which buttons the control surface shows.
//   - LapRows: the lap list projection with 1-based positions.
package stopwatch
