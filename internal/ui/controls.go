package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lapwatch/internal/stopwatch"
)

// focusedControl returns the button the focus index lands on after clamping
// it to the buttons currently visible.
func (m Model) focusedControl() stopwatch.Control {
	controls := stopwatch.VisibleControls(m.state)
	return controls[clamp(m.focus, 0, len(controls)-1)]
}

// moveFocus steps the button focus, wrapping at either end.
func (m *Model) moveFocus(delta int) {
	n := len(stopwatch.VisibleControls(m.state))
	cur := clamp(m.focus, 0, n-1)
	m.focus = ((cur+delta)%n + n) % n
}

// renderControls draws the visible buttons side by side.
func (m Model) renderControls(styles Styles) string {
	controls := stopwatch.VisibleControls(m.state)
	focused := m.focusedControl()

	buttons := make([]string, 0, len(controls))
	for _, c := range controls {
		style := styles.Button
		if c == focused {
			style = styles.FocusedButton
		}
		buttons = append(buttons, style.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
