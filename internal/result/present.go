package result

// NotAvailable is shown for a level the payload does not provide.
const NotAvailable = "N/A"

// WarningUnstructured is the warning shown when the response did not decode.
const WarningUnstructured = "response was not valid structured data"

var levelKeys = [3]string{"l1", "l2", "l3"}

// Metrics are the three taxonomy levels rendered for display.
type Metrics struct {
	L1 string
	L2 string
	L3 string
}

// Levels returns the metrics in L1, L2, L3 order.
func (m Metrics) Levels() [3]string {
	return [3]string{m.L1, m.L2, m.L3}
}

// Options controls which parts of a structured object are presented.
type Options struct {
	ShowMetrics bool
	ShowPayload bool
}

// DefaultOptions shows everything.
func DefaultOptions() Options {
	return Options{ShowMetrics: true, ShowPayload: true}
}

// Presentation is what the results pane renders for one outcome.
type Presentation struct {
	Metrics *Metrics
	Payload *Value
	Warning string
	// PayloadHidden is set when an object payload exists but the settings hide it.
	PayloadHidden bool
}

// HasWarning reports whether a warning must be shown.
func (p Presentation) HasWarning() bool {
	return p.Warning != ""
}

// PrettyPayload returns the payload as indented JSON, or "" when there is none.
func (p Presentation) PrettyPayload() string {
	if p.Payload == nil {
		return ""
	}
	return p.Payload.Indented()
}

// Present builds the structured view of an outcome.
//
// Objects get L1/L2/L3 metrics (when at least one level is present) and the
// full payload. Arrays and scalars are shown as the payload alone. An
// unstructured outcome yields only a warning; the raw text is always
// available separately through RawView.
func Present(outcome Outcome, opts Options) Presentation {
	payload, ok := outcome.Payload()
	if !ok {
		return Presentation{Warning: WarningUnstructured}
	}

	if payload.Kind() != KindObject {
		return Presentation{Payload: &payload}
	}

	var p Presentation
	if opts.ShowMetrics {
		p.Metrics = ExtractMetrics(payload)
	}
	if opts.ShowPayload {
		p.Payload = &payload
	} else {
		p.PayloadHidden = true
	}
	return p
}

// ExtractMetrics resolves l1, l2 and l3 in an object ignoring key case.
// It returns nil when none of them is present; otherwise missing levels
// are NotAvailable.
func ExtractMetrics(payload Value) *Metrics {
	var (
		levels [3]string
		found  bool
	)
	for i, key := range levelKeys {
		v, ok := payload.Lookup(key)
		found = found || ok
		levels[i] = FormatMetric(v, ok)
	}

	if !found {
		return nil
	}
	return &Metrics{L1: levels[0], L2: levels[1], L3: levels[2]}
}

// FormatMetric renders one resolved level. Strings are shown without
// quotes, numbers and booleans as written, null or absent values as
// NotAvailable, and objects or arrays as ASCII-only compact JSON.
func FormatMetric(v Value, ok bool) string {
	if !ok {
		return NotAvailable
	}

	switch v.Kind() {
	case KindNull:
		return NotAvailable
	case KindString:
		return v.Text()
	case KindNumber, KindBool:
		return v.Raw()
	default:
		return v.ASCII()
	}
}
