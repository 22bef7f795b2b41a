// Package app is the composition root for lapwatch.
//
// Run wires the pieces together in this order:
//
//  1. config.Load reads ~/.config/lapwatch/config.toml (or -config)
//  2. The -initial flag overrides initial_seconds when non-negative
//  3. A debug logger is opened on -log / LAPWATCH_LOG via tea.LogToFile,
//     otherwise logs are discarded because the terminal belongs to the TUI
//  4. prefs.Load picks the theme, degrading to the default on any error
//     or on a theme name the UI does not know
//  5. ui.Run starts the Bubble Tea program and blocks
//
// Fatal errors (returned from Run): unreadable or invalid config, unopenable
// log file, and Bubble Tea runtime failures. Context cancellation is a clean
// exit.
package app
