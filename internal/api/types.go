package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Dataspace ---

// Dataspace is a named partition that scopes segment search and writes.
type Dataspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// --- Segment ---

// Segment is a market segment candidate returned by search.
type Segment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SegmentType string `json:"segment_type,omitempty"`
	Status      string `json:"status,omitempty"`
}

// --- Eligibility Writes ---

// SegmentLinkInput is the payload for both inclusion and exclusion writes.
type SegmentLinkInput struct {
	OfferID       string `json:"offer_id"`
	DataspaceName string `json:"dataspace_name"`
	SegmentID     string `json:"segment_id"`
	SegmentName   string `json:"segment_name"`
}

// Outcome classifies a write response.
type Outcome string

const (
	OutcomeSuccess Outcome = "ok"
	OutcomeFail    Outcome = "fail"
	// OutcomeUnknown marks a response that carried neither marker.
	OutcomeUnknown Outcome = "unknown"
)

const (
	successMarker = "SUCCESS:"
	failMarker    = "FAIL:"
)

// WriteResult is the structured form of a write response.
type WriteResult struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// ParseWriteResult classifies a legacy status string. The markers may appear
// anywhere in the text; SUCCESS: decides Outcome when both appear. Use
// Succeeded and Failed to see each marker.
func ParseWriteResult(raw string) WriteResult {
	switch {
	case strings.Contains(raw, successMarker):
		return WriteResult{Outcome: OutcomeSuccess, Message: raw}
	case strings.Contains(raw, failMarker):
		return WriteResult{Outcome: OutcomeFail, Message: raw}
	default:
		return WriteResult{Outcome: OutcomeUnknown, Message: raw}
	}
}

// Succeeded reports whether the result carries a success, either as its
// outcome or as a SUCCESS: marker in the text.
func (w WriteResult) Succeeded() bool {
	return w.Outcome == OutcomeSuccess || strings.Contains(w.Message, successMarker)
}

// Failed reports whether the result carries a failure. A legacy string may
// hold both markers, in which case Succeeded and Failed are both true.
func (w WriteResult) Failed() bool {
	return w.Outcome == OutcomeFail || strings.Contains(w.Message, failMarker)
}

// UnmarshalJSON accepts either a bare status string or an
// {"outcome","message"} object.
func (w *WriteResult) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = ParseWriteResult(s)
		return nil
	}
	var structured struct {
		Outcome string `json:"outcome"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	switch Outcome(strings.ToLower(strings.TrimSpace(structured.Outcome))) {
	case OutcomeSuccess, "success":
		*w = WriteResult{Outcome: OutcomeSuccess, Message: structured.Message}
	case OutcomeFail, "failure", "error":
		*w = WriteResult{Outcome: OutcomeFail, Message: structured.Message}
	default:
		*w = ParseWriteResult(structured.Message)
	}
	return nil
}

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
