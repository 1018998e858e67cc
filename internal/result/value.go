package result

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind is the JSON type of a Value.
type Kind int

// JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a decoded JSON value of any shape. Objects keep their fields in
// document order, duplicates included.
type Value struct {
	res gjson.Result
}

// Field is one key/value pair of an object.
type Field struct {
	Key   string
	Value Value
}

func newValue(res gjson.Result) Value {
	return Value{res: res}
}

// Kind reports the JSON type of v.
func (v Value) Kind() Kind {
	switch v.res.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if v.res.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// Fields returns the fields of an object in document order. It returns nil
// for any other kind.
func (v Value) Fields() []Field {
	if v.Kind() != KindObject {
		return nil
	}

	var fields []Field
	v.res.ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, Field{Key: key.String(), Value: newValue(value)})
		return true
	})
	return fields
}

// Elements returns the items of an array, or nil for any other kind.
func (v Value) Elements() []Value {
	if v.Kind() != KindArray {
		return nil
	}

	items := v.res.Array()
	values := make([]Value, 0, len(items))
	for _, item := range items {
		values = append(values, newValue(item))
	}
	return values
}

// Lookup finds the field whose key matches key ignoring case. Keys are
// compared whole, so "L1 " does not match "l1". When several keys differ
// only by case the first one in the document wins.
func (v Value) Lookup(key string) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}

	target := strings.ToLower(key)
	var (
		found Value
		ok    bool
	)
	v.res.ForEach(func(k, value gjson.Result) bool {
		if strings.ToLower(k.String()) == target {
			found, ok = newValue(value), true
			return false
		}
		return true
	})
	return found, ok
}

// Raw returns the JSON text of v exactly as it appeared in the document.
func (v Value) Raw() string {
	return v.res.Raw
}

// Text returns the unescaped contents of a string value.
func (v Value) Text() string {
	return v.res.Str
}

// Bool returns the value of a boolean.
func (v Value) Bool() bool {
	return v.res.Bool()
}

// Compact returns v as JSON with insignificant whitespace removed.
func (v Value) Compact() string {
	return string(pretty.Ugly([]byte(v.res.Raw)))
}

// ASCII returns the compact JSON of v with every non-ASCII rune written as
// a \uXXXX escape.
func (v Value) ASCII() string {
	return escapeNonASCII(v.Compact())
}

// Indented returns v as indented JSON, keys in document order.
func (v Value) Indented() string {
	out := pretty.PrettyOptions([]byte(v.res.Raw), &pretty.Options{
		Width:  80,
		Indent: "  ",
	})
	return strings.TrimRight(string(out), "\n")
}

// Interface converts v into plain Go values: map[string]any, []any,
// string, float64, bool or nil. Object key order is lost.
func (v Value) Interface() any {
	return v.res.Value()
}

// escapeNonASCII assumes s is valid JSON, so non-ASCII runes can only occur
// inside strings where \u escapes are legal.
func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}
