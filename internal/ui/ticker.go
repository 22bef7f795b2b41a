package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickSource is the live repeating tick. Each acquisition gets a new
// generation id; tick messages carry the id that scheduled them so a tick
// already in flight when the source is released can be recognised and
// dropped.
type tickSource struct {
	id    int
	every time.Duration
}

type tickMsg struct {
	id int
}

// next schedules the following tick for this source.
func (t *tickSource) next() tea.Cmd {
	id := t.id
	return tea.Tick(t.every, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// acquireTicker creates the tick source unless one is already held.
func (m *Model) acquireTicker() tea.Cmd {
	if m.ticker != nil {
		return nil
	}
	m.tickGen++
	m.ticker = &tickSource{id: m.tickGen, every: m.tickEvery}
	m.logger.Debug("tick source acquired", "tick", m.ticker.id)
	return m.ticker.next()
}

// releaseTicker drops the tick source. Safe to call when none is held.
func (m *Model) releaseTicker() {
	if m.ticker == nil {
		return
	}
	m.logger.Debug("tick source released", "tick", m.ticker.id)
	m.ticker = nil
}

// syncTicker makes the tick source match the state's mode.
func (m *Model) syncTicker() tea.Cmd {
	switch {
	case m.state.Running() && m.ticker == nil:
		return m.acquireTicker()
	case !m.state.Running() && m.ticker != nil:
		m.releaseTicker()
	}
	return nil
}

// activeTickSources reports how many tick sources are live (zero or one).
func (m Model) activeTickSources() int {
	if m.ticker == nil {
		return 0
	}
	return 1
}
