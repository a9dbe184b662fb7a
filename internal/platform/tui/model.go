package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// Spawn error policies.
const (
	OnErrorStay = "stay"
	OnErrorExit = "exit"
)

// PadSource supplies the gamepad snapshot for one tick.
type PadSource interface {
	Snapshot() core.Buttons
}

// Options configures a Model.
type Options struct {
	Config   core.RuntimeConfig
	Renderer *Renderer
	Pad      PadSource // nil when gamepads are disabled
	OnError  string    // OnErrorStay or OnErrorExit
	Logger   *log.Logger
}

// frame caches the last rendered view across Model copies.
type frame struct {
	view  string
	valid bool
}

// Model is the Bubble Tea model hosting the kiosk controller.
type Model struct {
	ctrl     *core.Controller
	opts     Options
	logger   *log.Logger
	screen   *core.Screen
	keymap   KeyMap
	mapper   *KeyMapper
	help     help.Model
	keys     core.KeySnapshot
	focused  bool
	quitting bool
	err      error

	frame         *frame
	now           time.Time
	lastSelected  int
	lastAnimating bool
}

// NewModel creates a Bubble Tea model for the controller.
// The terminal is assumed focused until it reports otherwise.
func NewModel(ctrl *core.Controller, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = &Renderer{Theme: DefaultTheme(), Assets: NewAssets(opts.Logger)}
	}
	if opts.Config == (core.RuntimeConfig{}) {
		opts.Config = core.DefaultConfig()
	}
	if opts.OnError == "" {
		opts.OnError = OnErrorStay
	}

	keymap := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	w, sh := screenSize(opts.Config.ScreenW, opts.Config.ScreenH)
	return Model{
		ctrl:         ctrl,
		opts:         opts,
		logger:       opts.Logger,
		screen:       core.NewScreen(w, sh),
		keymap:       keymap,
		mapper:       NewKeyMapper(keymap),
		help:         h,
		focused:      true,
		frame:        &frame{},
		now:          time.Now(),
		lastSelected: ctrl.Selected(),
	}
}

// screenSize returns the grid area for a terminal, leaving the last row for
// the help footer when there is room.
func screenSize(w, h int) (int, int) {
	if h >= 3 {
		return w, h - 1
	}
	return w, h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.focused = true
		m.invalidate()
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		m.invalidate()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey accumulates key presses until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mapper.MapKeyToSnapshot(msg, &m.keys) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Config.ScreenW = msg.Width
	m.opts.Config.ScreenH = msg.Height
	m.screen.Resize(screenSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	m.invalidate()
	return m, nil
}

// handleTick runs one controller tick with the input gathered since the
// previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var pad core.Buttons
	if m.opts.Pad != nil {
		// Drained even when unfocused so stale presses never replay.
		pad = m.opts.Pad.Snapshot()
	}

	err := m.ctrl.Tick(m.keys, pad, m.focused, now)
	m.keys = core.KeySnapshot{}

	if err != nil {
		var spawnErr *core.SpawnError
		if errors.As(err, &spawnErr) {
			m.logger.Error("Launch failed",
				"index", spawnErr.Index,
				"name", spawnErr.Entry.ID,
				"command", spawnErr.Entry.Command,
				"error", spawnErr.Err,
			)
		} else {
			m.logger.Error("Tick failed", "error", err)
		}
		if m.opts.OnError == OnErrorExit {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	}

	if anim := m.ctrl.Animation(); anim.Active && anim.StartedAt.Equal(now) {
		entry := m.ctrl.Entries()[anim.Target]
		m.logger.Info("Launched", "index", anim.Target, "name", entry.ID, "command", entry.Command)
	}

	if m.ctrl.CloseRequested() {
		m.logger.Info("Close requested")
		m.quitting = true
		return m, tea.Quit
	}

	// Repaint only when something visible changed.
	animating := m.ctrl.Animating()
	if animating || m.lastAnimating ||
		m.ctrl.Selected() != m.lastSelected ||
		!sameMinute(now, m.now) {
		m.invalidate()
	}
	m.lastAnimating = animating
	m.lastSelected = m.ctrl.Selected()
	m.now = now

	return m, tickCmd(m.opts.Config.TickInterval())
}

func (m Model) invalidate() {
	m.frame.valid = false
}

func sameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame.valid {
		return m.frame.view
	}

	m.opts.Renderer.Compose(m.screen, m.ctrl, m.now)
	view := RenderScreen(m.screen)
	if m.screen.Height() < m.opts.Config.ScreenH {
		view += "\n" + m.opts.Renderer.Theme.Help.Render(m.help.View(m.keymap))
	}

	m.frame.view = view
	m.frame.valid = true
	return view
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Focused reports whether the terminal currently has focus.
func (m Model) Focused() bool {
	return m.focused
}
