package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("# Greetings\n\n**hola** means *hello*")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>hola</strong>")
	assert.Contains(t, out, "<em>hello</em>")
}

func TestToHTMLSanitizedStripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("hello <script>alert(1)</script> world\n\n<img src=x onerror=alert(1)>")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
}

func TestSanitizeKeepsSafeMarkup(t *testing.T) {
	r := NewRenderer()

	out := r.Sanitize(`<p>ok</p><a href="https://example.com" onclick="x()">link</a>`)
	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "onclick")
}
