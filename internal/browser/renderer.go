package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

const renderCacheSize = 512

// Renderer turns trusted HTML lines into terminal text.
type Renderer struct {
	cache *lru.Cache[string, string]

	mu       sync.Mutex
	glam     *glamour.TermRenderer
	glamWide int
}

// NewRenderer creates a Renderer with an empty cache.
func NewRenderer() *Renderer {
	cache, _ := lru.New[string, string](renderCacheSize)
	return &Renderer{cache: cache}
}

// Render converts one rich line to styled text wrapped at width. Results
// are cached per width.
func (r *Renderer) Render(src string, width int) string {
	if width <= 0 {
		width = 80
	}

	key := fmt.Sprintf("%d\x00%s", width, src)
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	md, err := ToMarkdown(src)
	if err != nil {
		return src
	}

	out, err := r.renderMarkdown(md, width)
	if err != nil {
		out = md
	}

	r.cache.Add(key, out)
	return out
}

// renderMarkdown runs glamour, recreating it only when the width changes.
func (r *Renderer) renderMarkdown(md string, width int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.glam == nil || r.glamWide != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		r.glam = tr
		r.glamWide = width
	}

	out, err := r.glam.Render(md)
	if err != nil {
		return "", err
	}
	return tidy(out), nil
}

// tidy drops the blank lines glamour puts around a block and trailing padding.
func tidy(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// ToMarkdown converts an inline HTML fragment to markdown. Anchors become
// links; spans whose class mentions "title" become bold.
func ToMarkdown(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parsing line: %w", err)
	}

	var sb strings.Builder
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		convertInline(s, &sb)
	})

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	for i, l := range lines {
		lines[i] = escapeBlockStart(l)
	}
	return strings.Join(lines, "\n"), nil
}

// PlainText strips markup from a rich line.
func PlainText(src string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return src
	}
	return doc.Find("body").Text()
}

func convertInline(s *goquery.Selection, sb *strings.Builder) {
	switch goquery.NodeName(s) {
	case "#text":
		sb.WriteString(escapeMarkdown(s.Text()))
	case "a":
		sb.WriteString(convertLink(s))
	case "span":
		inner := convertChildren(s)
		if strings.Contains(s.AttrOr("class", ""), "title") && inner != "" {
			sb.WriteString("**" + inner + "**")
		} else {
			sb.WriteString(inner)
		}
	case "strong", "b":
		sb.WriteString("**" + convertChildren(s) + "**")
	case "em", "i":
		sb.WriteString("*" + convertChildren(s) + "*")
	case "br":
		sb.WriteString("  \n")
	default:
		sb.WriteString(convertChildren(s))
	}
}

func convertChildren(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		convertInline(child, &sb)
	})
	return sb.String()
}

// convertLink emits a markdown link. When the text already shows the URL
// the URL is left bare so it is printed once.
func convertLink(s *goquery.Selection) string {
	text := s.Text()
	href, ok := s.Attr("href")
	if !ok || href == "" {
		return escapeMarkdown(text)
	}

	if i := strings.Index(text, href); i >= 0 {
		return escapeMarkdown(text[:i]) + href + escapeMarkdown(text[i+len(href):])
	}
	if text == "" {
		text = href
	}
	return "[" + escapeMarkdown(text) + "](" + href + ")"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// escapeBlockStart escapes a list, setext or fence marker at the start of
// a line so names like "-" or "1." stay literal text.
func escapeBlockStart(line string) string {
	start := len(line) - len(strings.TrimLeft(line, " "))
	rest := line[start:]
	if rest == "" {
		return line
	}

	switch rest[0] {
	case '-', '+', '=', '~':
		return line[:start] + `\` + rest
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(rest) && (rest[digits] == '.' || rest[digits] == ')') {
		return line[:start] + rest[:digits] + `\` + rest[digits:]
	}
	return line
}
