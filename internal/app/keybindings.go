package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidyasagar/webhub/internal/ui"
)

// KeyMap defines all keybindings for webhub. Keys not bound here edit
// the live input line.
type KeyMap struct {
	// Input line
	Submit     key.Binding
	RecallPrev key.Binding
	RecallNext key.Binding

	// Transcript
	PageUp   key.Binding
	PageDown key.Binding
	Clear    key.Binding

	// Sites panel
	ToggleSites key.Binding
	SitesUp     key.Binding
	SitesDown   key.Binding
	SitesClose  key.Binding

	// Actions
	CycleTheme key.Binding
	Keys       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default terminal-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "run line"),
		),
		RecallPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous line"),
		),
		RecallNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next line"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+l", "clear screen"),
		),
		ToggleSites: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+s", "toggle sites panel"),
		),
		SitesUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous site"),
		),
		SitesDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next site"),
		),
		SitesClose: key.NewBinding(
			key.WithKeys("esc", "ctrl+s"),
			key.WithHelp("Esc", "close panel"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+t", "next theme"),
		),
		Keys: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "show keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("Ctrl+c", "quit"),
		),
	}
}

// Groups arranges the bindings for the key reference panel.
func (k KeyMap) Groups() []ui.KeyGroup {
	return []ui.KeyGroup{
		{Name: "Input", Icon: "⌨", Hints: hints(k.Submit, k.RecallPrev, k.RecallNext)},
		{Name: "Screen", Icon: "📜", Hints: hints(k.PageUp, k.PageDown, k.Clear)},
		{Name: "Sites", Icon: "🔗", Hints: hints(k.ToggleSites, k.SitesUp, k.SitesDown, k.SitesClose)},
		{Name: "Other", Icon: "⚡", Hints: hints(k.CycleTheme, k.Keys, k.Quit)},
	}
}

func hints(bindings ...key.Binding) []ui.KeyHint {
	out := make([]ui.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, ui.KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return out
}
