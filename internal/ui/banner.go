package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

const bannerTitle = "ELIGIBILITY MAPPER"

// RenderBanner returns the header block: title, the offer being edited, and
// an underline sized to the wider of the two.
func RenderBanner(offerID string) string {
	subtitleText := "Offer " + components.SanitizeOneLine(offerID)
	if strings.TrimSpace(offerID) == "" {
		subtitleText = "No offer record"
	}

	blockWidth := max(lipgloss.Width(bannerTitle), lipgloss.Width(subtitleText))

	title := BannerStyle.Width(blockWidth).Align(lipgloss.Center).Render(bannerTitle)
	subtitle := MutedStyle.Width(blockWidth).Align(lipgloss.Center).Render(subtitleText)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Render(strings.Repeat("─", blockWidth))

	return title + "\n" + subtitle + "\n" + underline
}
