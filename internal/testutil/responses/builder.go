package responses

import (
	"testing"
	"time"

	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
)

// DefaultDescription is used when a builder is given no description.
const DefaultDescription = "12x Dell UltraSharp U2723QE monitors, 27-inch, USB-C"

// Builder provides a fluent interface for constructing displayed results.
type Builder struct {
	at          time.Time
	t           *testing.T
	description string
	supplier    string
	raw         Raw
}

// NewBuilder creates a builder for a structured result classified at a
// fixed instant.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:           t,
		description: DefaultDescription,
		raw:         Structured,
		at:          time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

// WithDescription sets the PO description.
func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

// WithSupplier sets the supplier.
func (b *Builder) WithSupplier(supplier string) *Builder {
	b.supplier = supplier
	return b
}

// WithRaw sets the collaborator response.
func (b *Builder) WithRaw(raw Raw) *Builder {
	b.raw = raw
	return b
}

// At sets the classification time.
func (b *Builder) At(at time.Time) *Builder {
	b.at = at
	return b
}

// Build validates the request and returns the displayed result.
func (b *Builder) Build() result.DisplayedResult {
	b.t.Helper()
	req, err := model.NewClassificationRequest(b.description, b.supplier)
	if err != nil {
		b.t.Fatalf("invalid test request: %v", err)
	}
	return result.NewDisplayedResult(req, b.raw.String(), b.at)
}
