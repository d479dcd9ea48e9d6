package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/theme"
)

// KeyHint is one row of the key reference.
type KeyHint struct {
	Key  string
	Desc string
}

// KeyGroup is a named column of key hints.
type KeyGroup struct {
	Name  string
	Icon  string
	Hints []KeyHint
}

// KeysPanel renders the popup key reference.
type KeysPanel struct {
	visible bool
	groups  []KeyGroup
}

// NewKeysPanel creates a panel listing groups.
func NewKeysPanel(groups []KeyGroup) KeysPanel {
	return KeysPanel{groups: groups}
}

// Show makes the panel visible.
func (kp *KeysPanel) Show() {
	kp.visible = true
}

// Hide closes the panel.
func (kp *KeysPanel) Hide() {
	kp.visible = false
}

// IsVisible reports whether the panel is shown.
func (kp *KeysPanel) IsVisible() bool {
	return kp.visible
}

// View renders the panel as a bordered box.
func (kp *KeysPanel) View() string {
	if !kp.visible {
		return ""
	}

	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	groupNameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Underline(true)

	keyBadgeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Secondary).
		Padding(0, 1)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	// Uniform column heights.
	maxRows := 0
	for _, g := range kp.groups {
		if len(g.Hints) > maxRows {
			maxRows = len(g.Hints)
		}
	}

	colStyle := lipgloss.NewStyle().Width(26)

	var columns []string
	for i, group := range kp.groups {
		lines := []string{groupNameStyle.Render(group.Icon + " " + group.Name), ""}
		for _, h := range group.Hints {
			lines = append(lines, keyBadgeStyle.Render(h.Key)+descStyle.Render(" "+h.Desc))
		}
		for j := len(group.Hints); j < maxRows; j++ {
			lines = append(lines, "")
		}

		col := colStyle.Render(strings.Join(lines, "\n"))
		columns = append(columns, col)

		if i < len(kp.groups)-1 {
			sep := make([]string, lipgloss.Height(col))
			for s := range sep {
				sep[s] = separatorStyle.Render(" │ ")
			}
			columns = append(columns, strings.Join(sep, "\n"))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	bodyWidth := lipgloss.Width(body)
	rule := separatorStyle.Render(strings.Repeat("─", bodyWidth))

	footer := dimStyle.Render("type 'help' for commands · any key to dismiss")
	if fw := lipgloss.Width(footer); fw < bodyWidth {
		footer = strings.Repeat(" ", (bodyWidth-fw)/2) + footer
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("⌨ Keys"),
		rule,
		"",
		body,
		"",
		rule,
		footer,
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	return boxStyle.Render(content)
}
