package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func actionGroup() *ButtonGroup {
	return NewButtonGroup(
		Button{Label: "Inclusion", Value: "inclusion"},
		Button{Label: "Exclusion", Value: "exclusion"},
	)
}

func TestNewButtonGroupStartsNeutral(t *testing.T) {
	g := actionGroup()
	assert.Empty(t, g.Highlighted())
	for _, b := range g.Buttons {
		assert.Equal(t, VariantNeutral, b.Variant)
	}
}

func TestButtonGroupClickIsMutuallyExclusive(t *testing.T) {
	g := actionGroup()
	clicks := []int{0, 1, 1, 0, 1}
	for _, idx := range clicks {
		value, ok := g.Click(idx)
		assert.True(t, ok)
		assert.Equal(t, g.Buttons[idx].Value, value)
		assert.Equal(t, []int{idx}, g.Highlighted())
	}
}

func TestButtonGroupClickOutOfRange(t *testing.T) {
	g := actionGroup()
	g.Click(0)
	_, ok := g.Click(5)
	assert.False(t, ok)
	assert.Equal(t, []int{0}, g.Highlighted())
}

func TestButtonGroupCursorWraps(t *testing.T) {
	g := actionGroup()
	g.Left()
	assert.Equal(t, 1, g.Cursor)
	g.Right()
	assert.Equal(t, 0, g.Cursor)

	value, ok := g.ClickFocused()
	assert.True(t, ok)
	assert.Equal(t, "inclusion", value)
}

func TestButtonGroupRenderShowsLabels(t *testing.T) {
	g := actionGroup()
	out := g.Render(true)
	assert.Contains(t, out, "Inclusion")
	assert.Contains(t, out, "Exclusion")
	assert.Contains(t, out, "^")
}
