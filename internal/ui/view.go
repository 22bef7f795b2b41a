package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lapwatch/internal/stopwatch"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	sections := []string{
		m.renderHeader(styles),
		m.renderTimer(styles),
		m.renderControls(styles),
		m.renderLaps(styles),
		m.renderFooter(styles),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title bar with mode and theme.
func (m Model) renderHeader(styles Styles) string {
	mode := styles.MutedText.Render("● idle")
	if m.state.Running() {
		mode = styles.SuccessText.Render("● running")
	}
	left := styles.Logo.Render("lapwatch") + "  " + mode
	right := styles.FaintText.Render(m.theme.Name)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderTimer renders the elapsed-time label.
func (m Model) renderTimer(styles Styles) string {
	label := styles.Timer.Render(stopwatch.FormatTime(m.state.Seconds))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Render(label)
}

// renderLaps renders the lap list box.
func (m Model) renderLaps(styles Styles) string {
	title := fmt.Sprintf("Laps (%d)", len(m.state.Laps))
	return m.renderBox(styles, title, m.lapViewport.View())
}

// renderBox draws a bordered box with a title line.
func (m Model) renderBox(styles Styles, title, content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(max(m.width-2, 10)).
		Render(styles.AccentText.Bold(true).Render(title) + "\n" + content)
}

// renderFooter renders the short help line for the current state.
func (m Model) renderFooter(styles Styles) string {
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys.forState(m.state)))
}
