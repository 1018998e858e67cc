package result

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// MaxDepth is the deepest nesting of objects and arrays Parse accepts.
const MaxDepth = 512

// Outcome is the result of decoding a raw response: either Structured with
// a payload of any JSON shape, or Unstructured.
type Outcome struct {
	payload    Value
	structured bool
}

// Structured wraps a decoded payload.
func Structured(payload Value) Outcome {
	return Outcome{payload: payload, structured: true}
}

// Unstructured is the outcome for text that is not a single JSON value.
func Unstructured() Outcome {
	return Outcome{}
}

// IsStructured reports whether the raw text decoded.
func (o Outcome) IsStructured() bool {
	return o.structured
}

// Payload returns the decoded value and true, or false when unstructured.
func (o Outcome) Payload() (Value, bool) {
	return o.payload, o.structured
}

func (o Outcome) String() string {
	if !o.structured {
		return "unstructured"
	}
	return "structured(" + o.payload.Kind().String() + ")"
}

// Parse decodes raw as exactly one JSON value surrounded by optional
// whitespace. Anything else, including the empty string, a truncated
// document, trailing text, invalid UTF-8 or nesting deeper than MaxDepth,
// is Unstructured.
func Parse(raw string) Outcome {
	if !utf8.ValidString(raw) || exceedsDepth(raw, MaxDepth) || !gjson.Valid(raw) {
		return Unstructured()
	}

	doc := strings.Trim(raw, " \t\r\n")
	return Structured(newValue(gjson.Parse(doc)))
}

// exceedsDepth reports whether the objects and arrays in doc nest deeper
// than limit. Brackets inside strings are ignored.
func exceedsDepth(doc string, limit int) bool {
	depth := 0
	inString := false

	for i := 0; i < len(doc); i++ {
		c := doc[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > limit {
				return true
			}
		case '}', ']':
			depth--
		}
	}
	return false
}

// RawView returns the raw response unchanged.
func RawView(raw string) string {
	return raw
}
