package browser

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStartsHandler(t *testing.T) {
	var got string
	o := NewOpener(zap.NewNop())
	o.launch = func(url string) *exec.Cmd {
		got = url
		// Re-run the test binary with no tests selected; it exits at once.
		return exec.Command(os.Args[0], "-test.run=^$")
	}

	require.NoError(t, o.Open("https://github.com"))
	assert.Equal(t, "https://github.com", got)
}

func TestOpenReportsMissingHandler(t *testing.T) {
	o := NewOpener(nil)
	o.launch = func(url string) *exec.Cmd {
		return exec.Command(filepath.Join(t.TempDir(), "no-such-opener"), url)
	}

	assert.Error(t, o.Open("https://github.com"))
}

func TestSystemCommandPassesURL(t *testing.T) {
	cmd := systemCommand("https://example.com")
	assert.Equal(t, "https://example.com", cmd.Args[len(cmd.Args)-1])
}
