package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the shell.
type Theme struct {
	Name string

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Prompt segments
	Prompt lipgloss.Color // scope and path
	Symbol lipgloss.Color // the trailing "~$"

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// UI element colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Link    lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
}

var themes = map[string]Theme{
	"default": Default,
	"gruvbox": Gruvbox,
	"nord":    Nord,
	"dracula": Dracula,
}

// Default is green-on-black, like a classic terminal.
var Default = Theme{
	Name:       "default",
	Primary:    lipgloss.Color("#00FF00"),
	Secondary:  lipgloss.Color("#8BE9FD"),
	Prompt:     lipgloss.Color("#00FF00"),
	Symbol:     lipgloss.Color("#7CFC00"),
	Text:       lipgloss.Color("#D0FFD0"),
	TextDim:    lipgloss.Color("#4E8A4E"),
	TextBright: lipgloss.Color("#FFFFFF"),
	Background: lipgloss.Color("#000000"),
	Surface:    lipgloss.Color("#0D1A0D"),
	Border:     lipgloss.Color("#1F3F1F"),
	Link:       lipgloss.Color("#00FF00"),
	Accent:     lipgloss.Color("#C792EA"),
	Error:      lipgloss.Color("#FF5555"),
	Success:    lipgloss.Color("#50FA7B"),
	Warning:    lipgloss.Color("#F1FA8C"),
	Info:       lipgloss.Color("#8BE9FD"),
}

var Gruvbox = Theme{
	Name:       "gruvbox",
	Primary:    lipgloss.Color("#B8BB26"),
	Secondary:  lipgloss.Color("#83A598"),
	Prompt:     lipgloss.Color("#B8BB26"),
	Symbol:     lipgloss.Color("#FABD2F"),
	Text:       lipgloss.Color("#EBDBB2"),
	TextDim:    lipgloss.Color("#928374"),
	TextBright: lipgloss.Color("#FBF1C7"),
	Background: lipgloss.Color("#282828"),
	Surface:    lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),
	Link:       lipgloss.Color("#83A598"),
	Accent:     lipgloss.Color("#D3869B"),
	Error:      lipgloss.Color("#FB4934"),
	Success:    lipgloss.Color("#B8BB26"),
	Warning:    lipgloss.Color("#FABD2F"),
	Info:       lipgloss.Color("#83A598"),
}

var Nord = Theme{
	Name:       "nord",
	Primary:    lipgloss.Color("#A3BE8C"),
	Secondary:  lipgloss.Color("#81A1C1"),
	Prompt:     lipgloss.Color("#A3BE8C"),
	Symbol:     lipgloss.Color("#88C0D0"),
	Text:       lipgloss.Color("#ECEFF4"),
	TextDim:    lipgloss.Color("#4C566A"),
	TextBright: lipgloss.Color("#ECEFF4"),
	Background: lipgloss.Color("#2E3440"),
	Surface:    lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#434C5E"),
	Link:       lipgloss.Color("#88C0D0"),
	Accent:     lipgloss.Color("#B48EAD"),
	Error:      lipgloss.Color("#BF616A"),
	Success:    lipgloss.Color("#A3BE8C"),
	Warning:    lipgloss.Color("#EBCB8B"),
	Info:       lipgloss.Color("#5E81AC"),
}

var Dracula = Theme{
	Name:       "dracula",
	Primary:    lipgloss.Color("#50FA7B"),
	Secondary:  lipgloss.Color("#BD93F9"),
	Prompt:     lipgloss.Color("#50FA7B"),
	Symbol:     lipgloss.Color("#BD93F9"),
	Text:       lipgloss.Color("#F8F8F2"),
	TextDim:    lipgloss.Color("#6272A4"),
	TextBright: lipgloss.Color("#F8F8F2"),
	Background: lipgloss.Color("#282A36"),
	Surface:    lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),
	Link:       lipgloss.Color("#8BE9FD"),
	Accent:     lipgloss.Color("#FF79C6"),
	Error:      lipgloss.Color("#FF5555"),
	Success:    lipgloss.Color("#50FA7B"),
	Warning:    lipgloss.Color("#F1FA8C"),
	Info:       lipgloss.Color("#8BE9FD"),
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// List returns all available theme names, sorted.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
