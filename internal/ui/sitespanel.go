package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/theme"
)

// SitesPanel displays the saved sites as a scrollable list beside the
// transcript.
type SitesPanel struct {
	entries []storage.Link
	cursor  int
	offset  int // scroll offset for visible window
	width   int
	height  int
	visible bool
}

// NewSitesPanel creates a new sites panel.
func NewSitesPanel() SitesPanel {
	return SitesPanel{}
}

// SetEntries updates the sites displayed, keeping the cursor in range.
func (sp *SitesPanel) SetEntries(entries []storage.Link) {
	sp.entries = entries
	if sp.cursor >= len(entries) {
		sp.cursor = len(entries) - 1
	}
	if sp.cursor < 0 {
		sp.cursor = 0
	}
	sp.ensureVisible()
}

// SetSize updates the panel dimensions.
func (sp *SitesPanel) SetSize(w, h int) {
	sp.width = w
	sp.height = h
	sp.ensureVisible()
}

// Show makes the panel visible.
func (sp *SitesPanel) Show() {
	sp.visible = true
	sp.cursor = 0
	sp.offset = 0
}

// Hide closes the panel.
func (sp *SitesPanel) Hide() {
	sp.visible = false
}

// IsVisible reports whether the panel is shown.
func (sp *SitesPanel) IsVisible() bool {
	return sp.visible
}

// CursorUp moves the cursor up one entry.
func (sp *SitesPanel) CursorUp() {
	if sp.cursor > 0 {
		sp.cursor--
		sp.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (sp *SitesPanel) CursorDown() {
	if sp.cursor < len(sp.entries)-1 {
		sp.cursor++
		sp.ensureVisible()
	}
}

// Selected returns the site at the cursor.
func (sp *SitesPanel) Selected() (storage.Link, bool) {
	if sp.cursor < 0 || sp.cursor >= len(sp.entries) {
		return storage.Link{}, false
	}
	return sp.entries[sp.cursor], true
}

// visibleCount returns how many entries fit in the visible area.
// Each entry takes 2 lines (name + url) below a 2 line header.
func (sp *SitesPanel) visibleCount() int {
	count := (sp.height - 3) / 2
	if count < 1 {
		count = 1
	}
	return count
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (sp *SitesPanel) ensureVisible() {
	visible := sp.visibleCount()
	if sp.cursor < sp.offset {
		sp.offset = sp.cursor
	}
	if sp.cursor >= sp.offset+visible {
		sp.offset = sp.cursor - visible + 1
	}
	if sp.offset < 0 {
		sp.offset = 0
	}
}

// View renders the sites panel.
func (sp *SitesPanel) View() string {
	if !sp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(sp.width).
		Height(sp.height).
		Background(t.Background)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(sp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Surface).
		Bold(true).
		Width(sp.width).
		Padding(0, 1)

	selectedURLStyle := lipgloss.NewStyle().
		Foreground(t.Link).
		Background(t.Surface).
		Width(sp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(sp.width).
		Padding(0, 1)

	urlStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(sp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("🔗 Sites (%d)", len(sp.entries))))
	sb.WriteString("\n")

	sepWidth := sp.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(sp.entries) == 0 {
		sb.WriteString(dimStyle.Render("No sites saved."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	end := sp.offset + sp.visibleCount()
	if end > len(sp.entries) {
		end = len(sp.entries)
	}

	maxLen := sp.width - 4
	if maxLen < 10 {
		maxLen = 10
	}

	for i := sp.offset; i < end; i++ {
		entry := sp.entries[i]
		name := truncate(entry.Name, maxLen)
		url := truncate(entry.URL, maxLen)

		if i == sp.cursor {
			sb.WriteString(selectedStyle.Render("▸ " + name))
			sb.WriteString("\n")
			sb.WriteString(selectedURLStyle.Render("  " + url))
		} else {
			sb.WriteString(normalStyle.Render("  " + name))
			sb.WriteString("\n")
			sb.WriteString(urlStyle.Render("  " + url))
		}
		sb.WriteString("\n")
	}

	linesUsed := 2 + (end-sp.offset)*2
	if remaining := sp.height - linesUsed; remaining > 1 {
		sb.WriteString(strings.Repeat("\n", remaining-1))
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render("↑/↓:move  Enter:open  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
