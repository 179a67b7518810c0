package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
)

// submit validates the form and dispatches the write for the chosen action.
// Keys are ignored while a write is in flight.
func (m *FormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	dataspaceName := m.dataspaceLabel()
	segmentID, segmentName := "", ""
	if m.selectedSegment != nil {
		segmentID, segmentName = m.selectedSegment.ID, m.selectedSegment.Name
	}
	if dataspaceName == "" || segmentID == "" || m.selectedAction == ActionNone {
		return emitToast(warningToast(fillAllFieldsMessage))
	}

	input := api.SegmentLinkInput{
		OfferID:       m.offerID,
		DataspaceName: dataspaceName,
		SegmentID:     segmentID,
		SegmentName:   segmentName,
	}
	action := m.selectedAction
	m.submitting = true
	m.logger.Info("submitting segment link",
		zap.String("action", string(action)),
		zap.String("offer_id", input.OfferID),
		zap.String("dataspace", input.DataspaceName),
		zap.String("segment_id", input.SegmentID))

	svc := m.service
	return func() tea.Msg {
		var (
			result *api.WriteResult
			err    error
		)
		switch action {
		case ActionInclusion:
			result, err = svc.CreateSegmentInclusion(input)
		case ActionExclusion:
			result, err = svc.CreateSegmentExclusion(input)
		}
		return writeDoneMsg{action: action, result: result, err: err}
	}
}

// handleWriteDone maps the write outcome to a toast and resets the visible
// fields. Selection state is kept.
func (m FormModel) handleWriteDone(msg writeDoneMsg) (FormModel, tea.Cmd) {
	m.submitting = false

	var cmd tea.Cmd
	switch {
	case msg.err != nil:
		m.err = msg.err
		m.logger.Error("segment link failed", zap.String("action", string(msg.action)), zap.Error(msg.err))
		cmd = emitToast(errorToast(msg.err.Error()))
	case msg.result == nil:
		m.err = nil
	default:
		m.err = nil
		// Each marker raises its own toast; success goes first.
		var toasts []tea.Cmd
		if msg.result.Succeeded() {
			toasts = append(toasts, emitToast(successToast(msg.result.Message)))
		}
		if msg.result.Failed() {
			toasts = append(toasts, emitToast(errorToast(msg.result.Message)))
		}
		switch len(toasts) {
		case 0:
			m.logger.Warn("unrecognized write response", zap.String("message", msg.result.Message))
		case 1:
			cmd = toasts[0]
		default:
			cmd = tea.Sequence(toasts...)
		}
	}

	m.resetFields()
	return m, cmd
}

// resetFields empties the search box, the results and the dataspace picker
// display. The selected dataspace id, segment and action survive.
func (m *FormModel) resetFields() {
	m.debounce.Cancel()
	m.searchSeq++
	m.searching = false
	m.searchTerm = ""
	m.searchInput.Reset()
	m.clearResults()
	m.dataspacePicker.Reset()
}
