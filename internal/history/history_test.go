package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecallOnEmptyHistoryIsNoop(t *testing.T) {
	h := New()

	_, ok := h.Prev()
	assert.False(t, ok)
	_, ok = h.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Cursor())
}

func TestPrevWalksBackAndStopsAtOldest(t *testing.T) {
	h := New()
	for _, line := range []string{"ls", "help", "about"} {
		h.Push(line)
	}
	require.Equal(t, 3, h.Cursor())

	var got []string
	for i := 0; i < 4; i++ {
		line, ok := h.Prev()
		require.True(t, ok)
		got = append(got, line)
	}
	assert.Equal(t, []string{"about", "help", "ls", "ls"}, got)
	assert.Equal(t, 0, h.Cursor())
}

func TestNextStopsPastNewestWithEmptyLine(t *testing.T) {
	h := New()
	h.Push("ls")
	h.Push("help")

	h.Prev()
	h.Prev()

	line, _ := h.Next()
	assert.Equal(t, "help", line)
	line, _ = h.Next()
	assert.Equal(t, "", line)
	line, _ = h.Next()
	assert.Equal(t, "", line)
	assert.Equal(t, h.Len(), h.Cursor())
}

func TestPushResetsCursor(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("b")
	h.Prev()
	h.Prev()

	h.Push("")
	assert.Equal(t, 3, h.Cursor())
	assert.Equal(t, []string{"a", "b", ""}, h.Entries())

	line, _ := h.Prev()
	assert.Equal(t, "", line)
}

func TestCursorInvariant(t *testing.T) {
	h := New()
	ops := []string{"push", "prev", "prev", "next", "push", "next", "next", "prev", "prev", "prev", "prev"}
	for _, op := range ops {
		switch op {
		case "push":
			h.Push(op)
		case "prev":
			h.Prev()
		case "next":
			h.Next()
		}
		assert.GreaterOrEqual(t, h.Cursor(), 0)
		assert.LessOrEqual(t, h.Cursor(), h.Len())
	}
}
