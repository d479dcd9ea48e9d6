package transcript

import "strings"

// Kind distinguishes how a line is rendered.
type Kind int

const (
	Plain Kind = iota // literal text
	Rich              // trusted HTML
	Echo              // frozen prompt plus the submitted line
)

// Line is one rendered row of output.
type Line struct {
	Kind   Kind
	Text   string
	Prompt string // set for Echo lines only
}

// Transcript is the append-only output log. Lines are never edited;
// Clear is the only way to drop them.
type Transcript struct {
	lines   []Line
	version int
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Print appends a plain text line.
func (t *Transcript) Print(text string) {
	t.append(Line{Kind: Plain, Text: text})
}

// PrintRich appends a line of trusted markup.
func (t *Transcript) PrintRich(html string) {
	t.append(Line{Kind: Rich, Text: html})
}

// Echo records a submitted line together with the prompt it was typed at.
func (t *Transcript) Echo(prompt, text string) {
	t.append(Line{Kind: Echo, Prompt: prompt, Text: text})
}

// Clear drops every line.
func (t *Transcript) Clear() {
	t.lines = nil
	t.version++
}

// Lines returns a copy of the lines, oldest first.
func (t *Transcript) Lines() []Line {
	result := make([]Line, len(t.lines))
	copy(result, t.lines)
	return result
}

// Len returns the number of lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Version changes whenever the transcript changes. Views use it to skip
// re-rendering.
func (t *Transcript) Version() int {
	return t.version
}

// Texts returns the Text of every line except echoes.
func (t *Transcript) Texts() []string {
	var out []string
	for _, l := range t.lines {
		if l.Kind == Echo {
			continue
		}
		out = append(out, l.Text)
	}
	return out
}

// String renders the transcript with echoes shown as prompt+text and
// markup left as is.
func (t *Transcript) String() string {
	var sb strings.Builder
	for i, l := range t.lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		if l.Kind == Echo {
			sb.WriteString(l.Prompt)
		}
		sb.WriteString(l.Text)
	}
	return sb.String()
}

func (t *Transcript) append(l Line) {
	t.lines = append(t.lines, l)
	t.version++
}
