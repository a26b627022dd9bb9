package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_Render(t *testing.T) {
	m := NewMarkdown()

	out, err := m.Render("Builds **reliable** systems")
	require.NoError(t, err)
	assert.Equal(t, "<p>Builds <strong>reliable</strong> systems</p>\n", string(out))

	out, err = m.Render("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarkdown_Sanitizes(t *testing.T) {
	m := NewMarkdown()

	out, err := m.Render("hello <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.NotContains(t, string(out), "javascript:")
}

func TestMarkdown_Links(t *testing.T) {
	m := NewMarkdown()

	out, err := m.Render("[repo](https://github.com/example)")
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="https://github.com/example"`)
	assert.Contains(t, string(out), "nofollow")
	assert.Contains(t, string(out), `target="_blank"`)
}

func TestMarkdown_Inline(t *testing.T) {
	m := NewMarkdown()

	out, err := m.Inline("Search *fast*")
	require.NoError(t, err)
	assert.Equal(t, "Search <em>fast</em>", string(out))

	out, err = m.Inline("one\n\ntwo")
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>\n<p>two</p>", string(out))
}
