package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Eligibility mapper

Link a market segment to the offer as an **inclusion** or an **exclusion**.

1. Pick a dataspace with ←/→.
2. Type in the segment field. Results appear once you stop typing.
3. Move into the results with ↓ and press enter to select.
4. Choose *Inclusion* or *Exclusion* and press enter.
5. Press enter on **Apply** or ctrl+s anywhere.

| Key | Action |
|-----|--------|
| tab / shift+tab | Next / previous field |
| ↑ ↓ | Move in results |
| enter | Select |
| ctrl+s | Apply |
| esc | Dismiss notification |
| f1 | Toggle help |
| ctrl+c | Quit |
`

// renderHelpMarkdown renders the help page for the given glamour style.
// Rendering errors fall back to the raw markdown.
func renderHelpMarkdown(style string, width int) string {
	if width <= 0 || width > 80 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
