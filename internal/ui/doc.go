// Package ui provides the Bubble Tea terminal interface for lapwatch.
//
// # Layout
//
//	lapwatch  ● running                                  Nightfox
//	╭──────────╮
//	│   0:04   │
//	╰──────────╯
//	╭──────╮╭─────╮
//	│ stop ││ lap │
//	╰──────╯╰─────╯
//	╭ Laps (1) ─────────────────────────────────────────────────╮
//	│  1/   0:04  +0:04   [x]                                  │
//	╰───────────────────────────────────────────────────────────╯
//	s/space stop • l lap • d/x delete lap • ? help • q quit
//
// # Event Flow
//
// Bubble Tea delivers key presses and tick messages to Model.Update one at a
// time, so user transitions and ticks never interleave. Every transition goes
// through the reducers in package stopwatch; the model only decides which
// button a key maps to and whether that button is visible.
//
// # Tick Source
//
// The model owns at most one tickSource. Starting acquires one and schedules
// a tea.Tick; every delivered tick re-arms it. Stop, reset and quit release
// it. Ticks carry the generation id of the source that scheduled them, and a
// tick whose id is not the live source's is dropped, so a tick already in
// flight at stop time never advances the clock.
//
// # Key Bindings
//
//   - s/space: Start or stop
//   - l: Lap (running only)
//   - r: Reset (idle with time on the clock only)
//   - j/k: Select lap
//   - d/x/delete: Delete selected lap
//   - 1-9: Delete lap by position
//   - tab/shift+tab/enter: Move between and press buttons
//   - T: Cycle theme (persisted to prefs)
//   - h/?: Help
//   - q/ctrl+c: Quit
package ui
