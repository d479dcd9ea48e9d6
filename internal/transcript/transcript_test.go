package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendKeepsOrderAndKinds(t *testing.T) {
	tr := New()
	tr.Echo("Main:/Users/guest:~$ ", "ls")
	tr.Print("github")
	tr.PrintRich(`<a href="https://github.com">github</a>`)

	lines := tr.Lines()
	assert.Len(t, lines, 3)
	assert.Equal(t, Echo, lines[0].Kind)
	assert.Equal(t, "Main:/Users/guest:~$ ", lines[0].Prompt)
	assert.Equal(t, Plain, lines[1].Kind)
	assert.Equal(t, Rich, lines[2].Kind)
	assert.Equal(t, []string{"github", `<a href="https://github.com">github</a>`}, tr.Texts())
	assert.Equal(t, "Main:/Users/guest:~$ ls\ngithub\n<a href=\"https://github.com\">github</a>", tr.String())
}

func TestClearIsIdempotent(t *testing.T) {
	tr := New()
	tr.Print("a")
	tr.Print("b")

	for i := 0; i < 3; i++ {
		tr.Clear()
		assert.Equal(t, 0, tr.Len())
		assert.Empty(t, tr.Lines())
	}
}

func TestVersionChangesOnEveryMutation(t *testing.T) {
	tr := New()
	v := tr.Version()
	tr.Print("x")
	assert.NotEqual(t, v, tr.Version())
	v = tr.Version()
	tr.Clear()
	assert.NotEqual(t, v, tr.Version())
}
