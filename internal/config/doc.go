// Package config loads lapwatch startup settings from a TOML file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lapwatch/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. Fields missing from the file keep their defaults
//
// # TOML Format
//
//	initial_seconds = 1
//	initial_laps = [5, 10]
//	tick = "1s"
//
// # Validation
//
// Load rejects negative initial_seconds, negative laps and a non-positive
// tick with an "invalid config" error. Malformed TOML or an unparsable tick
// returns a "parse config" error. Both are fatal at startup.
package config
