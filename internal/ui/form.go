package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

// Action is the eligibility direction chosen in the toggle.
type Action string

const (
	ActionNone      Action = ""
	ActionInclusion Action = "inclusion"
	ActionExclusion Action = "exclusion"
)

// SelectedSegment is the segment picked from the results.
type SelectedSegment struct {
	ID   string
	Name string
}

// SegmentSelectedMsg notifies the host that a segment was picked.
type SegmentSelectedMsg struct {
	ID   string
	Name string
}

// --- Messages ---

type dataspacesLoadedMsg struct {
	items []api.Dataspace
	err   error
}

type segmentsLoadedMsg struct {
	seq   int
	items []api.Segment
	err   error
}

type writeDoneMsg struct {
	action Action
	result *api.WriteResult
	err    error
}

// --- Focus ---

type formField int

const (
	fieldDataspace formField = iota
	fieldSearch
	fieldResults
	fieldAction
	fieldApply
	fieldCount
)

const resultsPageSize = 8

// FormModel edits the eligibility of one offer: pick a dataspace, search and
// select a segment, choose inclusion or exclusion, then apply.
type FormModel struct {
	service api.Service
	logger  *zap.Logger
	offerID string
	keys    keyMap

	dataspaceOptions  []components.Option
	dataspacePicker   *components.Choice
	selectedDataspace string

	searchInput textinput.Model
	searchTerm  string
	debounce    debouncer
	searchSeq   int
	searching   bool
	segments    []api.Segment
	results     *components.List

	selectedSegment *SelectedSegment
	actions         *components.ButtonGroup
	selectedAction  Action

	submitting bool
	spinner    spinner.Model
	err        error

	focus  formField
	width  int
	height int
}

// NewFormModel builds the form for offerID. A non-positive delay falls back
// to the 300ms search window.
func NewFormModel(service api.Service, offerID string, logger *zap.Logger, delay time.Duration) FormModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}

	input := textinput.New()
	input.Placeholder = "Search segments"
	input.Prompt = "> "
	input.CharLimit = 255
	input.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle

	return FormModel{
		service:         service,
		logger:          logger,
		offerID:         offerID,
		keys:            defaultKeyMap(),
		dataspacePicker: components.NewChoice("Select a dataspace"),
		searchInput:     input,
		debounce:        newDebouncer(delay),
		results:         components.NewList(resultsPageSize),
		actions: components.NewButtonGroup(
			components.Button{Label: "Inclusion", Value: string(ActionInclusion)},
			components.Button{Label: "Exclusion", Value: string(ActionExclusion)},
		),
		spinner: sp,
		focus:   fieldDataspace,
	}
}

// Init logs the offer context and loads dataspaces once.
func (m FormModel) Init() tea.Cmd {
	if strings.TrimSpace(m.offerID) == "" {
		m.logger.Warn("offer record id is not yet available")
	} else {
		m.logger.Info("offer record loaded", zap.String("offer_id", m.offerID))
	}
	return m.loadDataspaces()
}

// SpinnerTick starts the busy indicator animation.
func (m FormModel) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(components.BoxContentWidth(msg.Width)-16, 10)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dataspacesLoadedMsg:
		return m.handleDataspacesLoaded(msg), nil

	case searchDebounceMsg:
		if !m.debounce.Fires(msg) {
			return m, nil
		}
		m.searchTerm = msg.query
		cmd := m.searchSegments()
		return m, cmd

	case segmentsLoadedMsg:
		return m.handleSegmentsLoaded(msg), nil

	case writeDoneMsg:
		return m.handleWriteDone(msg)

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m FormModel) handleKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit()
		return m, cmd
	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.nextField(1))
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.nextField(-1))
		return m, nil
	}

	switch m.focus {
	case fieldDataspace:
		return m.handleDataspaceKeys(msg), nil
	case fieldSearch:
		return m.handleSearchKeys(msg)
	case fieldResults:
		return m.handleResultKeys(msg)
	case fieldAction:
		return m.handleActionKeys(msg), nil
	case fieldApply:
		if key.Matches(msg, m.keys.Confirm) {
			cmd := m.submit()
			return m, cmd
		}
	}
	return m, nil
}

// nextField walks the focus ring, skipping the results list when it is empty.
func (m FormModel) nextField(step int) formField {
	f := m.focus
	for range fieldCount {
		f = (f + formField(step) + fieldCount) % fieldCount
		if f == fieldResults && m.results.Len() == 0 {
			continue
		}
		return f
	}
	return m.focus
}

func (m *FormModel) setFocus(f formField) {
	m.focus = f
	if f == fieldSearch {
		m.searchInput.Focus()
		return
	}
	m.searchInput.Blur()
}

// --- Dataspace ---

func (m FormModel) loadDataspaces() tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		items, err := svc.ListDataspaces()
		return dataspacesLoadedMsg{items: items, err: err}
	}
}

func (m FormModel) handleDataspacesLoaded(msg dataspacesLoadedMsg) FormModel {
	if msg.err != nil {
		m.err = msg.err
		m.logger.Error("error retrieving dataspaces", zap.Error(msg.err))
		return m
	}
	options := make([]components.Option, 0, len(msg.items))
	for _, ds := range msg.items {
		options = append(options, components.Option{Label: ds.Name, Value: ds.ID})
	}
	m.dataspaceOptions = options
	m.dataspacePicker.SetOptions(options)
	return m
}

func (m FormModel) handleDataspaceKeys(msg tea.KeyMsg) FormModel {
	var (
		value string
		ok    bool
	)
	switch {
	case key.Matches(msg, m.keys.Left):
		value, ok = m.dataspacePicker.Prev()
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Confirm):
		value, ok = m.dataspacePicker.Next()
	case key.Matches(msg, m.keys.Down):
		m.setFocus(fieldSearch)
	}
	if ok {
		m.selectedDataspace = value
	}
	return m
}

// dataspaceLabel resolves the selected dataspace id to its display name. The
// first option with a matching value wins; no match yields "".
func (m FormModel) dataspaceLabel() string {
	for _, opt := range m.dataspaceOptions {
		if opt.Value == m.selectedDataspace {
			return opt.Label
		}
	}
	return ""
}

// --- Action toggle ---

func (m FormModel) handleActionKeys(msg tea.KeyMsg) FormModel {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.actions.Left()
	case key.Matches(msg, m.keys.Right):
		m.actions.Right()
	case key.Matches(msg, m.keys.Confirm):
		if value, ok := m.actions.ClickFocused(); ok {
			m.selectedAction = Action(value)
		}
	case key.Matches(msg, m.keys.Down):
		m.setFocus(fieldApply)
	case key.Matches(msg, m.keys.Up):
		m.setFocus(fieldSearch)
	}
	return m
}

// --- Accessors ---

// SelectedDataspace returns the chosen dataspace id.
func (m FormModel) SelectedDataspace() string { return m.selectedDataspace }

// SelectedSegment returns the picked segment, or nil.
func (m FormModel) SelectedSegment() *SelectedSegment { return m.selectedSegment }

// SelectedAction returns the chosen toggle value.
func (m FormModel) SelectedAction() Action { return m.selectedAction }

// SearchResults returns the visible segment candidates.
func (m FormModel) SearchResults() []api.Segment { return m.segments }

// Err returns the last stored error.
func (m FormModel) Err() error { return m.err }

// Busy reports whether a write is in flight.
func (m FormModel) Busy() bool { return m.submitting }

// StatusHints lists the bindings relevant to the focused field.
func (m FormModel) StatusHints() []string {
	hints := components.BindingHints(m.keys.NextField, m.keys.PrevField)
	switch m.focus {
	case fieldDataspace:
		hints = append(hints, components.Hint("←/→", "Dataspace"))
	case fieldResults:
		hints = append(hints, components.BindingHints(m.keys.Up, m.keys.Down, m.keys.Confirm)...)
	case fieldAction:
		hints = append(hints, components.Hint("←/→", "Move"), components.Hint("enter", "Choose"))
	}
	return append(hints, components.BindingHints(m.keys.Submit, m.keys.Help, m.keys.Quit)...)
}
