package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/webhub/internal/theme"
)

const promptSymbol = "~$ "

// RenderPrompt colors a prompt like "Main:/Users/guest:~$ ". The location
// and the trailing symbol get separate colors.
func RenderPrompt(prompt string) string {
	t := theme.Current

	locStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Prompt)
	symStyle := lipgloss.NewStyle().
		Foreground(t.Symbol)

	loc, ok := strings.CutSuffix(prompt, promptSymbol)
	if !ok {
		return locStyle.Render(prompt)
	}
	return locStyle.Render(loc) + symStyle.Render(promptSymbol)
}
