package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/lapwatch/internal/stopwatch"
)

// initLapViewport initializes the lap list viewport.
func (m *Model) initLapViewport() {
	m.lapViewport = viewport.New(m.lapListWidth(), m.lapListHeight())
}

// updateLapViewport resizes the viewport, re-renders the rows and keeps the
// selected lap in view.
func (m *Model) updateLapViewport() {
	if !m.ready {
		return
	}
	m.lapViewport.Width = m.lapListWidth()
	m.lapViewport.Height = m.lapListHeight()
	m.selectedLap = clamp(m.selectedLap, 0, len(m.state.Laps)-1)
	m.lapViewport.SetContent(m.renderLapRows())

	top := m.lapViewport.YOffset
	switch {
	case m.selectedLap < top:
		m.lapViewport.SetYOffset(m.selectedLap)
	case m.selectedLap >= top+m.lapViewport.Height:
		m.lapViewport.SetYOffset(m.selectedLap - m.lapViewport.Height + 1)
	}
}

func (m Model) lapListWidth() int {
	return max(m.width-4, 10)
}

func (m Model) lapListHeight() int {
	return max(m.height-chromeHeight, minLapRows)
}

// moveLapSelection moves the lap cursor by delta rows.
func (m *Model) moveLapSelection(delta int) {
	if len(m.state.Laps) == 0 {
		return
	}
	m.selectedLap = clamp(m.selectedLap+delta, 0, len(m.state.Laps)-1)
	m.updateLapViewport()
}

// renderLapRows renders one line per lap.
func (m Model) renderLapRows() string {
	styles := m.theme.Styles()
	rows := stopwatch.LapRows(m.state.Laps)
	if len(rows) == 0 {
		return styles.FaintText.Render("No laps recorded")
	}

	width := m.lapListWidth()
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := formatLapRow(row)
		if row.Index() == m.selectedLap {
			line = styles.Selected.Render(padRight(line, width))
		} else {
			line = styles.Text.Render(line)
		}
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}

// formatLapRow renders "#/ time  +split  [x]" for a single lap.
func formatLapRow(row stopwatch.LapRow) string {
	return fmt.Sprintf("%3d/ %6s  +%-6s [x]", row.Position, row.Label(), stopwatch.FormatTime(row.Split))
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
