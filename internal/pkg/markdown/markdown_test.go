package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "", Render("  "))
	assert.Equal(t, "<p><strong>Corner unit</strong> with a view</p>\n", Render("**Corner unit** with a view"))
}

func TestRenderDropsRawHTML(t *testing.T) {
	out := Render("hi <script>alert(1)</script>")
	assert.False(t, strings.Contains(out, "<script>"))
}
