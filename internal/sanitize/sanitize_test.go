package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStripsScript(t *testing.T) {
	got := Clean("<script>alert(1)</script>hello")
	assert.Equal(t, "hello", got)
	assert.NotContains(t, got, "<")
}

func TestCleanStripsTagsKeepsText(t *testing.T) {
	assert.Equal(t, "bold and plain", Clean("<b>bold</b> and plain"))
}

func TestCleanEmpty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
}

func TestCleanPreservesMultibyte(t *testing.T) {
	assert.Equal(t, "héllo wörld 👋", Clean("héllo wörld 👋"))
}

func TestCleanUnescapesEntities(t *testing.T) {
	assert.Equal(t, "fish & chips", Clean("fish & chips"))
}

func TestHasLink(t *testing.T) {
	assert.True(t, HasLink("see https://example.com"))
	assert.True(t, HasLink("http"))
	assert.False(t, HasLink("no links here"))
	assert.False(t, HasLink(""))
}
