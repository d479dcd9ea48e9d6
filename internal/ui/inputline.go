package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/theme"
)

// InputLine is the live prompt at the bottom of the transcript.
type InputLine struct {
	input  textinput.Model
	prompt string
	width  int
}

// NewInputLine creates an input line showing prompt.
func NewInputLine(prompt string) InputLine {
	ti := textinput.New()
	ti.CharLimit = 512

	il := InputLine{input: ti}
	il.SetPrompt(prompt)
	return il
}

// SetWidth sets the input line width.
func (il *InputLine) SetWidth(w int) {
	il.width = w
	il.input.Width = w - lipgloss.Width(il.prompt) - 1
	if il.input.Width < 1 {
		il.input.Width = 1
	}
}

// SetPrompt replaces the prompt, e.g. after setname changed the username.
func (il *InputLine) SetPrompt(prompt string) {
	il.prompt = prompt
	il.input.Prompt = RenderPrompt(prompt)
	if il.width > 0 {
		il.SetWidth(il.width)
	}
}

// Prompt returns the unstyled prompt.
func (il *InputLine) Prompt() string {
	return il.prompt
}

// Focus gives the input keyboard focus.
func (il *InputLine) Focus() tea.Cmd {
	return il.input.Focus()
}

// Value returns the text typed so far.
func (il *InputLine) Value() string {
	return il.input.Value()
}

// SetValue replaces the text and moves the cursor to the end.
func (il *InputLine) SetValue(val string) {
	il.input.SetValue(val)
	il.input.CursorEnd()
}

// Reset empties the input.
func (il *InputLine) Reset() {
	il.input.Reset()
}

// Update forwards messages to the text input.
func (il *InputLine) Update(msg tea.Msg) (*InputLine, tea.Cmd) {
	var cmd tea.Cmd
	il.input, cmd = il.input.Update(msg)
	return il, cmd
}

// View renders the input line.
func (il *InputLine) View() string {
	il.input.TextStyle = lipgloss.NewStyle().Foreground(theme.Current.TextBright)
	return il.input.View()
}
