package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

func (m FormModel) handleSearchKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.results.Len() > 0 {
			m.setFocus(fieldResults)
		} else {
			m.setFocus(fieldAction)
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.setFocus(fieldDataspace)
		return m, nil
	}

	before := m.searchInput.Value()
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, inputCmd
	}
	changeCmd := m.handleSearchChange(m.searchInput.Value())
	if inputCmd == nil {
		return m, changeCmd
	}
	return m, tea.Batch(inputCmd, changeCmd)
}

// handleSearchChange reacts to every edit of the search text. An empty value
// clears immediately; anything else waits for the quiet window.
func (m *FormModel) handleSearchChange(value string) tea.Cmd {
	m.debounce.Cancel()
	if value == "" {
		m.searchTerm = ""
		m.searchSeq++
		m.searching = false
		m.clearResults()
		m.selectedSegment = nil
		return nil
	}
	return m.debounce.Schedule(value)
}

// searchSegments issues the lookup for the current term. Only the response
// to the latest issued request is applied.
func (m *FormModel) searchSegments() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	term, dataspaceID := m.searchTerm, m.selectedDataspace
	m.searching = true
	svc := m.service
	return func() tea.Msg {
		items, err := svc.SearchSegments(term, dataspaceID)
		return segmentsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m FormModel) handleSegmentsLoaded(msg segmentsLoadedMsg) FormModel {
	if msg.seq != m.searchSeq {
		m.logger.Debug("dropping stale segment results", zap.Int("seq", msg.seq), zap.Int("latest", m.searchSeq))
		return m
	}
	m.searching = false
	if msg.err != nil {
		m.err = msg.err
		m.clearResults()
		return m
	}
	m.err = nil
	m.segments = msg.items
	labels := make([]string, 0, len(msg.items))
	for _, seg := range msg.items {
		labels = append(labels, segmentLabel(seg.Name, seg.Description))
	}
	m.results.SetItems(labels)
	return m
}

func (m FormModel) handleResultKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if !m.results.Up() {
			m.setFocus(fieldSearch)
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.results.Down()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.selectSegment(m.results.Selected())
	}
	// Any other key on the list drops the results.
	m.clearResults()
	m.setFocus(fieldSearch)
	return m, nil
}

func (m FormModel) selectSegment(idx int) (FormModel, tea.Cmd) {
	if idx < 0 || idx >= len(m.segments) {
		return m, nil
	}
	seg := m.segments[idx]
	m.selectedSegment = &SelectedSegment{ID: seg.ID, Name: seg.Name}
	m.clearResults()
	m.setFocus(fieldAction)
	selected := SegmentSelectedMsg{ID: seg.ID, Name: seg.Name}
	return m, func() tea.Msg { return selected }
}

func (m *FormModel) clearResults() {
	m.segments = nil
	m.results.Clear()
	if m.focus == fieldResults {
		m.setFocus(fieldSearch)
	}
}

func segmentLabel(name, description string) string {
	label := components.SanitizeOneLine(name)
	desc := components.SanitizeOneLine(components.StripMarkup(description))
	if desc == "" {
		return label
	}
	return label + "  " + desc
}
