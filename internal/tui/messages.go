package tui

import "github.com/Veraticus/po-classifier/internal/result"

// classifiedMsg carries a finished classification.
type classifiedMsg struct {
	result result.DisplayedResult
}

// classifyFailedMsg reports a failed classification call.
type classifyFailedMsg struct {
	err error
}

// sessionLoadedMsg carries the persisted last result, if any.
type sessionLoadedMsg struct {
	err    error
	result result.DisplayedResult
	found  bool
}

// sessionSavedMsg reports the outcome of a store write.
type sessionSavedMsg struct {
	err error
	op  string
}
