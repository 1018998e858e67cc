// Package result turns the raw text returned by the classification service
// into something the UI can show.
//
// Parse decides whether the text is a JSON value. Present extracts the
// L1/L2/L3 levels from an object, matching keys case-insensitively, and
// formats each level for display. The raw text is never modified and can
// always be shown next to the structured view.
package result
