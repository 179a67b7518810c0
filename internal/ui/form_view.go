package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(m.fieldRow(fieldDataspace, "Dataspace", m.dataspacePicker.Render(m.focus == fieldDataspace)))
	b.WriteString("\n\n")
	b.WriteString(m.fieldRow(fieldSearch, "Segment", m.searchInput.View()))
	if m.searching {
		b.WriteString(" " + m.spinner.View())
	}
	if results := m.renderResults(); results != "" {
		b.WriteString("\n")
		b.WriteString(results)
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderSelection())
	b.WriteString("\n\n")
	b.WriteString(m.fieldRow(fieldAction, "Action", m.actions.Render(m.focus == fieldAction)))
	b.WriteString("\n\n")
	b.WriteString(m.renderApply())

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(components.SanitizeOneLine(m.err.Error())))
	}

	return components.Indent(components.TitledBox("Eligibility", b.String(), m.width), 1)
}

func (m FormModel) fieldRow(field formField, label, value string) string {
	style := FieldLabelStyle
	if field == m.focus {
		style = FieldLabelActiveStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
}

func (m FormModel) renderResults() string {
	visible := m.results.Visible()
	if len(visible) == 0 {
		return ""
	}
	labelWidth := components.BoxContentWidth(m.width) - 16
	pad := strings.Repeat(" ", lipgloss.Width(FieldLabelStyle.Render("")))
	lines := make([]string, 0, len(visible))
	for i, label := range visible {
		if labelWidth > 0 {
			label = components.ClampTextWidth(label, labelWidth)
		}
		abs := m.results.RelToAbs(i)
		if m.focus == fieldResults && m.results.IsSelected(abs) {
			lines = append(lines, pad+SelectedStyle.Render("> "+label))
			continue
		}
		lines = append(lines, pad+NormalStyle.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

// renderSelection summarizes what Apply will send.
func (m FormModel) renderSelection() string {
	segment := "none"
	if m.selectedSegment != nil {
		segment = m.selectedSegment.Name + " (" + m.selectedSegment.ID + ")"
	}
	rows := []components.TableRow{
		{Label: "Dataspace", Value: orNone(m.dataspaceLabel())},
		{Label: "Segment", Value: segment},
		{Label: "Action", Value: orNone(string(m.selectedAction))},
	}
	return components.Table("Selection", rows, components.BoxContentWidth(m.width))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func (m FormModel) renderApply() string {
	label := "Apply"
	if m.submitting {
		label = m.spinner.View() + " Applying"
	}
	style := ApplyStyle
	if m.focus == fieldApply {
		style = ApplyActiveStyle
	}
	pad := strings.Repeat(" ", lipgloss.Width(FieldLabelStyle.Render("")))
	return lipgloss.JoinHorizontal(lipgloss.Top, pad, style.Render(label))
}
