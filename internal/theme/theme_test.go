package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	defer Set("default")

	assert.True(t, Set("nord"))
	assert.Equal(t, "nord", Current.Name)

	assert.False(t, Set("solarized"))
	assert.Equal(t, "nord", Current.Name)
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{"default", "dracula", "gruvbox", "nord"}, List())
}
