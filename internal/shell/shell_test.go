package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/transcript"
	"go.uber.org/zap"
)

type recordingNav struct{ opened []string }

func (r *recordingNav) Open(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func newShell(t *testing.T, kv storage.KV) (*Shell, *recordingNav) {
	t.Helper()
	nav := &recordingNav{}
	return New(Params{
		Links:     storage.LoadLinkStore(kv, nil),
		Profile:   storage.LoadProfile(kv, nil),
		Navigator: nav,
		Logger:    zap.NewNop(),
	}), nav
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Invocation
	}{
		{"ls", Invocation{Word: "ls", Name: "ls", Args: []string{}}},
		{"LS -L", Invocation{Word: "LS", Name: "ls", Args: []string{"-l"}}},
		{"Go GitHub", Invocation{Word: "Go", Name: "open", Args: []string{"github"}}},
		{"add  Foo", Invocation{Word: "add", Name: "add", Args: []string{"", "foo"}}},
		{"goto x", Invocation{Word: "goto", Name: "goto", Args: []string{"x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestPrompt(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	assert.Equal(t, "Main:/Users/guest:~$ ", sh.Prompt())

	sh.Submit("setname venkie")
	assert.Equal(t, "Main:/Users/venkie:~$ ", sh.Prompt())
}

func TestFreshStoreListsDefaults(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("ls")

	lines := sh.Transcript().Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, transcript.Echo, lines[0].Kind)
	assert.Equal(t, "ls", lines[0].Text)
	assert.Equal(t, []string{"github", "leetcode", "linkedin", ""}, sh.Transcript().Texts())
}

func TestAddThenOpen(t *testing.T) {
	sh, nav := newShell(t, storage.NewMemoryKV())

	sh.Submit("add foo https://x.com")
	sh.Submit("ls")
	assert.Contains(t, sh.Transcript().Texts(), "foo")

	sh.Submit("open foo")
	assert.Equal(t, []string{"https://x.com"}, nav.opened)
}

func TestGoAliasOpens(t *testing.T) {
	sh, nav := newShell(t, storage.NewMemoryKV())
	sh.Submit("GO LeetCode")
	assert.Equal(t, []string{"https://leetcode.com"}, nav.opened)
}

func TestInvalidURLIsRejected(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())

	sh.Submit("add foo ftp://x.com")
	assert.Contains(t, sh.Transcript().Texts(), "Invalid URL (must start with http/https)")

	sh.ClearTranscript()
	sh.Submit("ls")
	assert.NotContains(t, sh.Transcript().Texts(), "foo")
}

func TestArgumentsAreLowercased(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("ADD MySite HTTPS://Example.com")

	url, ok := sh.Links().Get("mysite")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", url)
}

func TestUnknownCommandKeepsOriginalCase(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("FooBar baz")
	assert.Equal(t, []string{"command not found: FooBar", "type 'help' for a list of commands", ""}, sh.Transcript().Texts())
}

func TestEmptyLineOnlyEchoes(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("   ")

	lines := sh.Transcript().Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, transcript.Echo, lines[0].Kind)
	assert.Equal(t, "", lines[0].Text)
	assert.Equal(t, []string{""}, sh.History().Entries())
}

func TestSubmitTrimsBeforeRecording(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("  help  ")
	assert.Equal(t, []string{"help"}, sh.History().Entries())
	assert.Equal(t, "help", sh.Transcript().Lines()[0].Text)
}

func TestRecall(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())

	_, ok := sh.RecallPrev()
	assert.False(t, ok)

	for _, line := range []string{"ls", "help", "about"} {
		sh.Submit(line)
	}

	var got []string
	for i := 0; i < 4; i++ {
		line, ok := sh.RecallPrev()
		require.True(t, ok)
		got = append(got, line)
	}
	assert.Equal(t, []string{"about", "help", "ls", "ls"}, got)

	line, _ := sh.RecallNext()
	assert.Equal(t, "help", line)
	sh.RecallNext()
	line, _ = sh.RecallNext()
	assert.Equal(t, "", line)
}

func TestClearCommandsEmptyTranscript(t *testing.T) {
	sh, _ := newShell(t, storage.NewMemoryKV())
	sh.Submit("help")
	for _, line := range []string{"cls", "clear", "CLS"} {
		sh.Submit(line)
		assert.Equal(t, 0, sh.Transcript().Len(), line)
	}
	assert.Equal(t, 4, sh.History().Len())
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	kv := storage.NewMemoryKV()
	sh, _ := newShell(t, kv)
	sh.Submit("add foo https://x.com")
	sh.Submit("rename github gh")
	sh.Submit("remove leetcode")
	sh.Submit("setname ada")

	next, _ := newShell(t, kv)
	next.Submit("ls")
	assert.Equal(t, []string{"linkedin", "foo", "gh", ""}, next.Transcript().Texts())
	assert.Equal(t, "Main:/Users/ada:~$ ", next.Prompt())
	assert.Equal(t, 0, next.History().Len()-1, "history is not persisted")
}

func TestCustomScope(t *testing.T) {
	kv := storage.NewMemoryKV()
	sh := New(Params{
		Scope:   "Work",
		Links:   storage.LoadLinkStore(kv, nil),
		Profile: storage.LoadProfile(kv, nil),
	})
	assert.Equal(t, "Work:/Users/guest:~$ ", sh.Prompt())
	assert.Equal(t, "Work", sh.Scope())
}

func TestNavigatorDefaultsToSystemOpener(t *testing.T) {
	kv := storage.NewMemoryKV()
	sh := New(Params{
		Links:   storage.LoadLinkStore(kv, nil),
		Profile: storage.LoadProfile(kv, nil),
	})
	require.NotNil(t, sh.env.Nav)
	assert.IsType(t, &browser.Opener{}, sh.env.Nav)
}
