package components

import "github.com/charmbracelet/lipgloss"

var (
	choiceValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Bold(true)
	choicePlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ba0bf")).
				Italic(true)
	choiceArrowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4"))
)

// Option is a label/value pair shown by a Choice.
type Option struct {
	Label string
	Value string
}

// Choice is a single-select picker cycled with left/right. Index -1 means
// nothing is displayed and the placeholder shows.
type Choice struct {
	Options     []Option
	Index       int
	Placeholder string
}

// NewChoice builds an empty picker.
func NewChoice(placeholder string) *Choice {
	return &Choice{Index: -1, Placeholder: placeholder}
}

// SetOptions replaces the options and clears the displayed value.
func (c *Choice) SetOptions(options []Option) {
	c.Options = options
	c.Index = -1
}

// Next moves to the following option and returns its value.
func (c *Choice) Next() (string, bool) {
	if len(c.Options) == 0 {
		return "", false
	}
	c.Index = (c.Index + 1) % len(c.Options)
	return c.Options[c.Index].Value, true
}

// Prev moves to the previous option and returns its value.
func (c *Choice) Prev() (string, bool) {
	if len(c.Options) == 0 {
		return "", false
	}
	if c.Index <= 0 {
		c.Index = len(c.Options) - 1
	} else {
		c.Index--
	}
	return c.Options[c.Index].Value, true
}

// Current returns the displayed option, if any.
func (c *Choice) Current() (Option, bool) {
	if c.Index < 0 || c.Index >= len(c.Options) {
		return Option{}, false
	}
	return c.Options[c.Index], true
}

// Reset clears the displayed value. Options are kept.
func (c *Choice) Reset() {
	c.Index = -1
}

// Render draws "‹ label ›", or the placeholder when nothing is displayed.
func (c *Choice) Render(focused bool) string {
	text := choicePlaceholderStyle.Render(c.Placeholder)
	if opt, ok := c.Current(); ok {
		text = choiceValueStyle.Render(SanitizeOneLine(opt.Label))
	}
	if !focused {
		return text
	}
	return choiceArrowStyle.Render("‹ ") + text + choiceArrowStyle.Render(" ›")
}
