package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant is the visual state of a button.
type Variant string

const (
	VariantNeutral Variant = "neutral"
	VariantBrand   Variant = "brand"
)

var (
	buttonNeutralStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#273540")).
				Padding(0, 2)

	buttonBrandStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16161d")).
				Background(lipgloss.Color("#7f57b4")).
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#7f57b4")).
				Padding(0, 2)

	buttonFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a7754e")).
				Bold(true)
)

// Button is one member of a ButtonGroup.
type Button struct {
	Label   string
	Value   string
	Variant Variant
}

// ButtonGroup is a row of mutually exclusive buttons. Clicking one returns
// every button to neutral before highlighting the clicked one.
type ButtonGroup struct {
	Buttons []Button
	Cursor  int
}

// NewButtonGroup builds a group with every button neutral.
func NewButtonGroup(buttons ...Button) *ButtonGroup {
	g := &ButtonGroup{Buttons: buttons}
	g.resetVariants()
	return g
}

func (g *ButtonGroup) resetVariants() {
	for i := range g.Buttons {
		g.Buttons[i].Variant = VariantNeutral
	}
}

// Click highlights the button at idx and returns its value.
func (g *ButtonGroup) Click(idx int) (string, bool) {
	if idx < 0 || idx >= len(g.Buttons) {
		return "", false
	}
	g.resetVariants()
	g.Buttons[idx].Variant = VariantBrand
	g.Cursor = idx
	return g.Buttons[idx].Value, true
}

// ClickFocused clicks the button under the cursor.
func (g *ButtonGroup) ClickFocused() (string, bool) {
	return g.Click(g.Cursor)
}

// Highlighted returns the indexes of buttons in the brand variant.
func (g *ButtonGroup) Highlighted() []int {
	var out []int
	for i, b := range g.Buttons {
		if b.Variant == VariantBrand {
			out = append(out, i)
		}
	}
	return out
}

// Left moves the cursor left, wrapping.
func (g *ButtonGroup) Left() {
	if len(g.Buttons) == 0 {
		return
	}
	g.Cursor = (g.Cursor - 1 + len(g.Buttons)) % len(g.Buttons)
}

// Right moves the cursor right, wrapping.
func (g *ButtonGroup) Right() {
	if len(g.Buttons) == 0 {
		return
	}
	g.Cursor = (g.Cursor + 1) % len(g.Buttons)
}

// Render draws the buttons side by side. When focused, a marker sits under
// the button at the cursor.
func (g *ButtonGroup) Render(focused bool) string {
	cells := make([]string, 0, len(g.Buttons))
	for i, b := range g.Buttons {
		style := buttonNeutralStyle
		if b.Variant == VariantBrand {
			style = buttonBrandStyle
		}
		cell := style.Render(SanitizeOneLine(b.Label))
		if focused {
			marker := strings.Repeat(" ", lipgloss.Width(cell))
			if i == g.Cursor {
				marker = buttonFocusStyle.Render(lipgloss.PlaceHorizontal(lipgloss.Width(cell), lipgloss.Center, "^"))
			}
			cell = lipgloss.JoinVertical(lipgloss.Left, cell, marker)
		}
		cells = append(cells, cell, " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
