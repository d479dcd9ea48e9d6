package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/shell"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/theme"
	"github.com/vidyasagar/webhub/internal/ui"
	"go.uber.org/zap"
)

// Mode represents where key presses go.
type Mode int

const (
	ModeInput Mode = iota // live input line focused
	ModeSites             // sites panel focused
)

// Options configures a Model. Every field is optional.
type Options struct {
	Config   *storage.Config // receives theme changes
	Renderer *browser.Renderer
	Logger   *zap.Logger
}

// Model is the top-level bubbletea model for webhub.
type Model struct {
	shell *shell.Shell

	// UI components
	view      ui.TranscriptView
	input     ui.InputLine
	statusBar ui.StatusBar
	sites     ui.SitesPanel
	keysPanel ui.KeysPanel

	keys   KeyMap
	mode   Mode
	width  int
	height int
	ready  bool

	config *storage.Config
	logger *zap.Logger
}

// New creates a Model driving sh.
func New(sh *shell.Shell, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := DefaultKeyMap()
	m := Model{
		shell:     sh,
		view:      ui.NewTranscriptView(opts.Renderer),
		input:     ui.NewInputLine(sh.Prompt()),
		statusBar: ui.NewStatusBar(),
		sites:     ui.NewSitesPanel(),
		keysPanel: ui.NewKeysPanel(keys.Groups()),
		keys:      keys,
		mode:      ModeInput,
		config:    opts.Config,
		logger:    logger,
	}
	m.input.Focus()
	m.syncStatusBar()
	return m
}

// Shell returns the session the model drives.
func (m Model) Shell() *shell.Shell {
	return m.shell
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.view.Refresh(m.shell.Transcript())
		m.view.GotoBottom()
		m.syncStatusBar()
		return m, nil

	case tea.MouseMsg:
		_, cmd := m.view.Update(msg)
		m.syncStatusBar()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other input messages.
	_, cmd := m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading webhub..."
	}

	// Layout:
	// [sites panel] [transcript]
	// [input line]
	// [status bar]

	var sections []string

	if m.sites.IsVisible() {
		t := theme.Current
		dividerStyle := lipgloss.NewStyle().
			Foreground(t.Border).
			Background(t.Background)

		dividerLines := make([]string, m.view.Height())
		for i := range dividerLines {
			dividerLines[i] = "│"
		}
		divider := dividerStyle.Render(strings.Join(dividerLines, "\n"))

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			m.sites.View(),
			divider,
			m.view.View(),
		))
	} else {
		sections = append(sections, m.view.View())
	}

	sections = append(sections, m.input.View())
	sections = append(sections, m.statusBar.View())

	result := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlay the key reference if active.
	if m.keysPanel.IsVisible() {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.keysPanel.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(theme.Current.Background),
		)
	}

	return result
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)
	m.input.SetWidth(m.width)

	inputHeight := 1
	statusBarHeight := 1
	viewHeight := m.height - inputHeight - statusBarHeight
	if viewHeight < 1 {
		viewHeight = 1
	}

	viewWidth := m.width
	if m.sites.IsVisible() {
		panelWidth := m.width * 30 / 100
		if panelWidth < 20 {
			panelWidth = 20
		}
		m.sites.SetSize(panelWidth, viewHeight)
		viewWidth = m.width - panelWidth - 1 // -1 for divider
	}
	if viewWidth < 1 {
		viewWidth = 1
	}

	m.view.SetSize(viewWidth, viewHeight)
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.keysPanel.IsVisible() {
		m.keysPanel.Hide()
		return m, nil
	}
	if key.Matches(msg, m.keys.Keys) {
		m.keysPanel.Show()
		return m, nil
	}
	if key.Matches(msg, m.keys.CycleTheme) {
		return m.cycleTheme()
	}

	if m.mode == ModeSites {
		return m.handleSitesMode(msg)
	}
	return m.handleInputMode(msg)
}

// handleInputMode processes keys while the live input line has focus.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keys.RecallPrev):
		if line, ok := m.shell.RecallPrev(); ok {
			m.input.SetValue(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.RecallNext):
		if line, ok := m.shell.RecallNext(); ok {
			m.input.SetValue(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.view.HalfPageUp()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.view.HalfPageDown()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.shell.ClearTranscript()
		m.view.Refresh(m.shell.Transcript())
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSites):
		m.sites.SetEntries(m.shell.Links().List())
		m.sites.Show()
		m.mode = ModeSites
		m.layout()
		m.view.Refresh(m.shell.Transcript())
		return m, nil
	}

	_, cmd := m.input.Update(msg)
	return m, cmd
}

// handleSitesMode processes keys while the sites panel has focus.
func (m Model) handleSitesMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SitesClose):
		m.sites.Hide()
		m.mode = ModeInput
		m.layout()
		m.view.Refresh(m.shell.Transcript())
	case key.Matches(msg, m.keys.SitesUp):
		m.sites.CursorUp()
	case key.Matches(msg, m.keys.SitesDown):
		m.sites.CursorDown()
	case key.Matches(msg, m.keys.Submit):
		if site, ok := m.sites.Selected(); ok {
			return m.submit("open " + site.Name)
		}
	}
	return m, nil
}

// submit runs one line through the shell and brings the view up to date.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.shell.Submit(line)
	m.input.Reset()
	m.input.SetPrompt(m.shell.Prompt())
	m.statusBar.SetMessage("")

	if m.sites.IsVisible() {
		m.sites.SetEntries(m.shell.Links().List())
	}

	m.view.Refresh(m.shell.Transcript())
	m.view.GotoBottom()
	m.syncStatusBar()
	return m, nil
}

// cycleTheme switches to the next available theme and remembers it in
// the config file.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	themes := theme.List()
	next := themes[0]
	for i, name := range themes {
		if name == theme.Current.Name {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	theme.Set(next)

	m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", next))
	m.input.SetPrompt(m.shell.Prompt())
	m.view.Invalidate()
	m.view.Refresh(m.shell.Transcript())

	if m.config != nil {
		m.config.Theme = next
		if err := m.config.Save(); err != nil {
			m.logger.Warn("saving theme", zap.String("theme", next), zap.Error(err))
			m.statusBar.SetMessage(fmt.Sprintf("Theme: %s (not saved)", next))
		}
	}
	return m, nil
}

// syncStatusBar updates the status bar with current state.
func (m *Model) syncStatusBar() {
	m.statusBar.SetScope(m.shell.Scope())
	m.statusBar.SetUsername(m.shell.Username())
	m.statusBar.SetLinkCount(m.shell.Links().Count())
	m.statusBar.SetScrollInfo(m.view.ScrollInfo())
}
