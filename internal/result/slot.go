package result

import (
	"time"

	"github.com/Veraticus/po-classifier/internal/model"
)

// DisplayedResult is the outcome of one completed classification.
// Raw is always the verbatim collaborator text.
type DisplayedResult struct {
	ClassifiedAt time.Time
	Request      model.ClassificationRequest
	Raw          string
	Outcome      Outcome
}

// NewDisplayedResult parses raw and bundles it with its request.
func NewDisplayedResult(req model.ClassificationRequest, raw string, at time.Time) DisplayedResult {
	return DisplayedResult{
		Request:      req,
		Raw:          raw,
		Outcome:      Parse(raw),
		ClassifiedAt: at,
	}
}

// Present is a shorthand for Present(r.Outcome, opts).
func (r DisplayedResult) Present(opts Options) Presentation {
	return Present(r.Outcome, opts)
}

// RawView returns the raw response unchanged.
func (r DisplayedResult) RawView() string {
	return RawView(r.Raw)
}

// Slot holds at most one DisplayedResult. A new result replaces the old
// one wholesale; there is no history.
type Slot struct {
	current  *DisplayedResult
	revision uint64
}

// Set replaces the held result.
func (s *Slot) Set(r DisplayedResult) {
	s.current = &r
	s.revision++
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.current = nil
	s.revision++
}

// Revision changes every time the slot is set or cleared.
func (s *Slot) Revision() uint64 {
	return s.revision
}

// Current returns the held result, if any.
func (s *Slot) Current() (DisplayedResult, bool) {
	if s.current == nil {
		return DisplayedResult{}, false
	}
	return *s.current, true
}

// Empty reports whether the slot holds nothing.
func (s *Slot) Empty() bool {
	return s.current == nil
}
