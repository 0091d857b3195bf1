package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/repl"
)

// Model is a Bubble Tea component that renders and drives a repl.Window.
type Model struct {
	cfg Config
	win *repl.Window

	focused bool

	viewport viewport.Model

	lastBuf     *buffer.Buffer
	lastVersion uint64
	lastEntries int

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastErr error
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	win := repl.New(cfg.Window)
	if cfg.Text != "" {
		win.InsertCode(cfg.Text)
		win.Buffer().SetCursor(buffer.Pos{})
	}

	m := Model{
		cfg:      cfg,
		win:      win,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.remember()
	m.rebuildContent()
	return m
}

// Window returns the interactive window behind the editor.
func (m Model) Window() *repl.Window { return m.win }

// Buffer returns the current submission.
func (m Model) Buffer() *buffer.Buffer { return m.win.Buffer() }

// Err returns the error of the last failed submission or command, if any.
func (m Model) Err() error { return m.lastErr }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Also catches hosts that mutate the window directly.
	if m.syncFromWindow() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) remember() {
	b := m.win.Buffer()
	m.lastBuf = b
	m.lastVersion = b.Version()
	m.lastEntries = len(m.win.Transcript())
}

func (m *Model) syncFromWindow() (changed bool) {
	b := m.win.Buffer()
	if b == m.lastBuf && b.Version() == m.lastVersion && len(m.win.Transcript()) == m.lastEntries {
		return false
	}
	m.remember()
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// inputTop is the view line of submission row 0.
func (m Model) inputTop() int {
	return len(m.win.ViewLines()) - m.win.Buffer().RowCount()
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	line := m.inputTop() + m.win.Buffer().Cursor().Row

	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}
