package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/theme"
	"github.com/vidyasagar/webhub/internal/transcript"
)

// TranscriptView wraps bubbles/viewport to show the session transcript.
type TranscriptView struct {
	viewport viewport.Model
	renderer *browser.Renderer
	ready    bool

	// Render cache keys.
	version int
	width   int
	content string
}

// NewTranscriptView creates a view; dimensions are set on the first
// WindowSizeMsg.
func NewTranscriptView(r *browser.Renderer) TranscriptView {
	if r == nil {
		r = browser.NewRenderer()
	}
	return TranscriptView{renderer: r, version: -1}
}

// SetSize updates the viewport dimensions.
func (tv *TranscriptView) SetSize(width, height int) {
	if !tv.ready {
		tv.viewport = viewport.New(width, height)
		tv.viewport.MouseWheelEnabled = true
		tv.viewport.MouseWheelDelta = 3
		tv.ready = true
	} else {
		tv.viewport.Width = width
		tv.viewport.Height = height
	}
}

// Refresh re-renders t if it changed since the last call or the width
// moved. It reports whether the content was replaced.
func (tv *TranscriptView) Refresh(t *transcript.Transcript) bool {
	if !tv.ready {
		return false
	}
	if t.Version() == tv.version && tv.viewport.Width == tv.width {
		return false
	}
	tv.version = t.Version()
	tv.width = tv.viewport.Width
	tv.content = tv.render(t.Lines())
	tv.viewport.SetContent(tv.content)
	return true
}

// Invalidate forces the next Refresh to re-render, e.g. after a theme
// change.
func (tv *TranscriptView) Invalidate() {
	tv.version = -1
}

// Content returns the last rendered content.
func (tv *TranscriptView) Content() string {
	return tv.content
}

func (tv *TranscriptView) render(lines []transcript.Line) string {
	t := theme.Current
	textStyle := lipgloss.NewStyle().Foreground(t.Text)
	echoStyle := lipgloss.NewStyle().Foreground(t.TextBright)

	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case transcript.Echo:
			rows = append(rows, RenderPrompt(l.Prompt)+echoStyle.Render(l.Text))
		case transcript.Rich:
			rows = append(rows, tv.renderer.Render(l.Text, tv.width))
		default:
			if l.Text == "" {
				rows = append(rows, "")
				continue
			}
			rows = append(rows, textStyle.Render(l.Text))
		}
	}
	return strings.Join(rows, "\n")
}

// Update forwards messages (mouse wheel, keys) to the viewport.
func (tv *TranscriptView) Update(msg tea.Msg) (*TranscriptView, tea.Cmd) {
	if !tv.ready {
		return tv, nil
	}
	var cmd tea.Cmd
	tv.viewport, cmd = tv.viewport.Update(msg)
	return tv, cmd
}

// View renders the viewport.
func (tv *TranscriptView) View() string {
	if !tv.ready {
		return "\n  Initializing..."
	}
	return tv.viewport.View()
}

// ScrollPercent returns the scroll percentage.
func (tv *TranscriptView) ScrollPercent() float64 {
	if !tv.ready {
		return 0
	}
	return tv.viewport.ScrollPercent()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (tv *TranscriptView) ScrollInfo() string {
	if !tv.ready || tv.viewport.TotalLineCount() <= tv.viewport.Height {
		return "ALL"
	}
	pct := tv.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// HalfPageDown scrolls down half a page.
func (tv *TranscriptView) HalfPageDown() {
	if tv.ready {
		tv.viewport.HalfViewDown()
	}
}

// HalfPageUp scrolls up half a page.
func (tv *TranscriptView) HalfPageUp() {
	if tv.ready {
		tv.viewport.HalfViewUp()
	}
}

// GotoBottom scrolls to the newest line.
func (tv *TranscriptView) GotoBottom() {
	if tv.ready {
		tv.viewport.GotoBottom()
	}
}

// Height returns the viewport height.
func (tv *TranscriptView) Height() int {
	if !tv.ready {
		return 0
	}
	return tv.viewport.Height
}
