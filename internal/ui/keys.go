package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/lapwatch/internal/stopwatch"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Stopwatch
	StartStop key.Binding
	Lap       key.Binding
	Reset     key.Binding

	// Lap list
	Up       key.Binding
	Down     key.Binding
	Delete   key.Binding
	DeleteAt key.Binding

	// Buttons
	NextControl key.Binding
	PrevControl key.Binding
	Press       key.Binding

	// General
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		StartStop: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "start"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous lap"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next lap"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d/x", "delete lap"),
		),
		DeleteAt: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Delete lap #"),
		),

		NextControl: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next button"),
		),
		PrevControl: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Press button"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forState returns a copy of the bindings with the stopwatch keys enabled
// only when their button is visible.
func (k keyMap) forState(s stopwatch.State) keyMap {
	if s.Running() {
		k.StartStop.SetHelp("s/space", "stop")
	}
	k.Lap.SetEnabled(stopwatch.IsVisible(s, stopwatch.ControlLap))
	k.Reset.SetEnabled(stopwatch.IsVisible(s, stopwatch.ControlReset))
	hasLaps := len(s.Laps) > 0
	k.Up.SetEnabled(hasLaps)
	k.Down.SetEnabled(hasLaps)
	k.Delete.SetEnabled(hasLaps)
	k.DeleteAt.SetEnabled(hasLaps)
	return k
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Lap, k.Reset, k.Delete, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Lap, k.Reset},
		{k.Up, k.Down, k.Delete, k.DeleteAt},
		{k.NextControl, k.PrevControl, k.Press},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
