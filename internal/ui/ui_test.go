package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/transcript"
)

func TestRenderPromptKeepsText(t *testing.T) {
	out := RenderPrompt("Main:/Users/guest:~$ ")
	assert.Contains(t, out, "Main:/Users/guest:")
	assert.Contains(t, out, "~$")

	assert.Contains(t, RenderPrompt("odd> "), "odd>")
}

func TestInputLine(t *testing.T) {
	il := NewInputLine("Main:/Users/guest:~$ ")
	il.SetWidth(80)

	il.SetValue("open github")
	assert.Equal(t, "open github", il.Value())

	il.Reset()
	assert.Equal(t, "", il.Value())

	il.SetPrompt("Main:/Users/ada:~$ ")
	assert.Equal(t, "Main:/Users/ada:~$ ", il.Prompt())
}

func TestTranscriptViewRefresh(t *testing.T) {
	tv := NewTranscriptView(nil)
	tr := transcript.New()

	assert.False(t, tv.Refresh(tr), "not ready before SetSize")

	tv.SetSize(80, 10)
	tr.Echo("Main:/Users/guest:~$ ", "ls")
	tr.Print("github")
	tr.Print("")
	tr.PrintRich(`<span class="about-title">Hello</span>`)

	require.True(t, tv.Refresh(tr))
	content := tv.Content()
	assert.Contains(t, content, "ls")
	assert.Contains(t, content, "github")
	assert.Contains(t, content, "Hello")
	assert.NotContains(t, content, "<span")

	assert.False(t, tv.Refresh(tr), "unchanged transcript is not re-rendered")

	tr.Clear()
	assert.True(t, tv.Refresh(tr))
	assert.Equal(t, "", tv.Content())
}

func TestTranscriptViewScrollInfo(t *testing.T) {
	tv := NewTranscriptView(nil)
	tv.SetSize(40, 3)
	tr := transcript.New()
	tr.Print("one")
	tv.Refresh(tr)
	assert.Equal(t, "ALL", tv.ScrollInfo())

	for i := 0; i < 20; i++ {
		tr.Print("line")
	}
	tv.Refresh(tr)
	assert.Equal(t, "TOP", tv.ScrollInfo())

	tv.GotoBottom()
	assert.Equal(t, "BOT", tv.ScrollInfo())
}

func TestSitesPanel(t *testing.T) {
	sp := NewSitesPanel()
	sp.SetSize(30, 20)
	sp.SetEntries(storage.DefaultLinks())

	assert.Equal(t, "", sp.View())

	sp.Show()
	require.True(t, sp.IsVisible())

	sel, ok := sp.Selected()
	require.True(t, ok)
	assert.Equal(t, "github", sel.Name)

	sp.CursorUp()
	sel, _ = sp.Selected()
	assert.Equal(t, "github", sel.Name)

	sp.CursorDown()
	sp.CursorDown()
	sp.CursorDown()
	sel, _ = sp.Selected()
	assert.Equal(t, "linkedin", sel.Name)

	view := sp.View()
	assert.Contains(t, view, "Sites (3)")
	assert.Contains(t, view, "leetcode")

	sp.SetEntries(storage.DefaultLinks()[:1])
	sel, _ = sp.Selected()
	assert.Equal(t, "github", sel.Name)

	sp.SetEntries(nil)
	_, ok = sp.Selected()
	assert.False(t, ok)
	assert.True(t, strings.Contains(sp.View(), "No sites saved."))
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(80)
	sb.SetScope("Main")
	sb.SetUsername("ada")
	sb.SetLinkCount(3)

	view := sb.View()
	assert.Contains(t, view, "Main")
	assert.Contains(t, view, "ada")
	assert.Contains(t, view, "3 sites")

	sb.SetMessage("Theme: nord")
	assert.Contains(t, sb.View(), "Theme: nord")
	assert.NotContains(t, sb.View(), "ada")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestKeysPanel(t *testing.T) {
	kp := NewKeysPanel([]KeyGroup{
		{Name: "Input", Icon: "⌨", Hints: []KeyHint{{Key: "Enter", Desc: "run line"}}},
		{Name: "Screen", Icon: "📜", Hints: []KeyHint{{Key: "Ctrl+l", Desc: "clear"}, {Key: "PgUp", Desc: "scroll up"}}},
	})
	assert.Equal(t, "", kp.View())

	kp.Show()
	view := kp.View()
	assert.Contains(t, view, "run line")
	assert.Contains(t, view, "Ctrl+l")
	assert.Contains(t, view, "Screen")

	kp.Hide()
	assert.False(t, kp.IsVisible())
}
