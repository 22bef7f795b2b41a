package ui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lapwatch/internal/prefs"
	"github.com/five82/lapwatch/internal/stopwatch"
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Logger         *slog.Logger
	InitialSeconds int
	InitialLaps    []int
	TickEvery      time.Duration
	ThemeName      string
	PrefsPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	logger    *slog.Logger
	prefsPath string
	tickEvery time.Duration

	// Stopwatch state and the tick source that drives it
	state   stopwatch.State
	ticker  *tickSource
	tickGen int

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool

	focus       int // index into the visible controls, clamped on use
	selectedLap int
	lapViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tickEvery := opts.TickEvery
	if tickEvery <= 0 {
		tickEvery = DefaultTickEvery
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		logger:    logger,
		prefsPath: prefsPath,
		tickEvery: tickEvery,
		state:     stopwatch.New(opts.InitialSeconds, opts.InitialLaps),
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("lapwatch")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.initLapViewport()
		}
		m.ready = true
		m.updateLapViewport()
		return m, nil

	case tickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// State returns the current stopwatch state.
func (m Model) State() stopwatch.State {
	return m.state
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.forState(m.state)

	if key.Matches(msg, keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, keys.StartStop):
		if m.state.Running() {
			return m, m.press(stopwatch.ControlStop)
		}
		return m, m.press(stopwatch.ControlStart)

	case key.Matches(msg, keys.Lap):
		return m, m.press(stopwatch.ControlLap)

	case key.Matches(msg, keys.Reset):
		return m, m.press(stopwatch.ControlReset)

	case key.Matches(msg, keys.NextControl):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, keys.PrevControl):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, keys.Press):
		return m, m.press(m.focusedControl())

	case key.Matches(msg, keys.Up):
		m.moveLapSelection(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveLapSelection(1)
		return m, nil

	case key.Matches(msg, keys.Delete):
		m.deleteLap(m.selectedLap)
		return m, nil

	case key.Matches(msg, keys.DeleteAt):
		position, err := strconv.Atoi(msg.String())
		if err == nil {
			m.deleteLap(position - 1)
		}
		return m, nil
	}

	return m, nil
}

// press runs the transition behind a visible button. Buttons that are not
// on the control surface do nothing.
func (m *Model) press(c stopwatch.Control) tea.Cmd {
	if !stopwatch.IsVisible(m.state, c) {
		return nil
	}
	m.state = stopwatch.Apply(m.state, c)
	m.logger.Debug(c.String(),
		slog.Int("seconds", m.state.Seconds),
		slog.Int("laps", len(m.state.Laps)),
	)
	if c == stopwatch.ControlLap {
		// follow the newest lap
		m.selectedLap = len(m.state.Laps) - 1
	}
	m.updateLapViewport()
	return m.syncTicker()
}

// deleteLap removes the lap at a 0-based index.
func (m *Model) deleteLap(index int) {
	before := len(m.state.Laps)
	m.state = stopwatch.ApplyDelete(m.state, index)
	if len(m.state.Laps) == before {
		return
	}
	m.logger.Debug("delete lap", slog.Int("index", index), slog.Int("laps", len(m.state.Laps)))
	m.selectedLap = clamp(m.selectedLap, 0, len(m.state.Laps)-1)
	m.updateLapViewport()
}

// handleTick advances the stopwatch when the tick belongs to the live source.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.ticker == nil || msg.id != m.ticker.id {
		m.logger.Debug("dropped stale tick", slog.Int("tick", msg.id))
		return m, nil
	}
	m.state = stopwatch.ApplyTick(m.state)
	return m, m.ticker.next()
}

// quit releases the tick source before handing control back to Bubble Tea.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.teardown()
	m.quitting = true
	return m, tea.Quit
}

// teardown releases every resource the model owns.
func (m *Model) teardown() {
	m.releaseTicker()
	m.state = stopwatch.ApplyStop(m.state)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyHelpStyles()
	m.updateLapViewport()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", slog.String("path", m.prefsPath), slog.Any("error", err))
	}
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.teardown()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
