// Package llm talks to the service that classifies PO line items. Every
// provider returns the model's text exactly as received; deciding whether
// that text is usable is left to the result package.
package llm
