package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

func TestRenderHelpMarkdownStyles(t *testing.T) {
	for _, style := range []string{"dark", "light", "notty", ""} {
		out := components.SanitizeText(renderHelpMarkdown(style, 60))
		assert.Contains(t, out, "Eligibility mapper", style)
		assert.Contains(t, out, "ctrl+s", style)
	}
}

func TestRenderHelpMarkdownUnknownStyleFallsBack(t *testing.T) {
	out := renderHelpMarkdown("no-such-style", 60)
	assert.Contains(t, out, "Eligibility mapper")
}
