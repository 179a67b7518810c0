package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
)

type searchCall struct {
	term        string
	dataspaceID string
}

// fakeService records every call the form makes.
type fakeService struct {
	dataspaces    []api.Dataspace
	dataspacesErr error
	segments      []api.Segment
	searchErr     error
	writeResult   *api.WriteResult
	writeErr      error

	listCalls  int
	searches   []searchCall
	inclusions []api.SegmentLinkInput
	exclusions []api.SegmentLinkInput
}

func (f *fakeService) ListDataspaces() ([]api.Dataspace, error) {
	f.listCalls++
	return f.dataspaces, f.dataspacesErr
}

func (f *fakeService) SearchSegments(searchTerm, dataspaceID string) ([]api.Segment, error) {
	f.searches = append(f.searches, searchCall{term: searchTerm, dataspaceID: dataspaceID})
	return f.segments, f.searchErr
}

func (f *fakeService) CreateSegmentInclusion(input api.SegmentLinkInput) (*api.WriteResult, error) {
	f.inclusions = append(f.inclusions, input)
	return f.writeResult, f.writeErr
}

func (f *fakeService) CreateSegmentExclusion(input api.SegmentLinkInput) (*api.WriteResult, error) {
	f.exclusions = append(f.exclusions, input)
	return f.writeResult, f.writeErr
}

func (f *fakeService) writeCalls() int {
	return len(f.inclusions) + len(f.exclusions)
}

func newFakeService() *fakeService {
	return &fakeService{
		dataspaces: []api.Dataspace{{ID: "ds1", Name: "EU"}, {ID: "ds2", Name: "US"}},
		segments: []api.Segment{
			{ID: "seg1", Name: "VIP", Description: "<b>Top</b> spenders"},
			{ID: "seg2", Name: "VIP Lapsed"},
		},
		writeResult: &api.WriteResult{Outcome: api.OutcomeSuccess, Message: "SUCCESS: linked"},
	}
}

func newTestForm(svc api.Service) FormModel {
	return NewFormModel(svc, "offer-1", zap.NewNop(), time.Millisecond)
}

// loadedForm returns a form whose dataspaces have been loaded.
func loadedForm(t *testing.T, svc *fakeService) FormModel {
	t.Helper()
	m := newTestForm(svc)
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// typeText focuses the search box and types s, returning the last command.
func typeText(m FormModel, s string) (FormModel, tea.Cmd) {
	m.setFocus(fieldSearch)
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = m.Update(keyRune(r))
	}
	return m, cmd
}

// settleSearch fires a debounce command and applies the search response.
func settleSearch(t *testing.T, m FormModel, debounceCmd tea.Cmd) FormModel {
	t.Helper()
	require.NotNil(t, debounceCmd)
	m, searchCmd := m.Update(debounceCmd())
	require.NotNil(t, searchCmd)
	m, _ = m.Update(searchCmd())
	return m
}

// selectDataspace cycles the picker until id is chosen.
func selectDataspace(t *testing.T, m FormModel, id string) FormModel {
	t.Helper()
	m.setFocus(fieldDataspace)
	for range len(m.dataspaceOptions) {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		if m.selectedDataspace == id {
			return m
		}
	}
	t.Fatalf("dataspace %q not offered", id)
	return m
}

// selectFirstSegment searches for term and confirms the first result.
func selectFirstSegment(t *testing.T, m FormModel, term string) FormModel {
	t.Helper()
	m, cmd := typeText(m, term)
	m = settleSearch(t, m, cmd)
	require.NotEmpty(t, m.segments)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, fieldResults, m.focus)
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(SegmentSelectedMsg)
	require.True(t, ok)
	return m
}

// chooseAction clicks the toggle button for action.
func chooseAction(t *testing.T, m FormModel, action Action) FormModel {
	t.Helper()
	m.setFocus(fieldAction)
	for i, b := range m.actions.Buttons {
		if b.Value == string(action) {
			m.actions.Cursor = i
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			return m
		}
	}
	t.Fatalf("no button for %q", action)
	return m
}

// readyForm is a form with every field filled: EU / VIP / action.
func readyForm(t *testing.T, svc *fakeService, action Action) FormModel {
	t.Helper()
	m := loadedForm(t, svc)
	m = selectDataspace(t, m, "ds1")
	m = selectFirstSegment(t, m, "vip")
	return chooseAction(t, m, action)
}

func toastFrom(t *testing.T, cmd tea.Cmd) Toast {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ToastMsg)
	require.True(t, ok, "expected ToastMsg")
	return msg.Toast
}
