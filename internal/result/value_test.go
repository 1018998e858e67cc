package result

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPayload(t *testing.T, raw string) Value {
	t.Helper()
	payload, ok := Parse(raw).Payload()
	require.True(t, ok, "expected %q to parse", raw)
	return payload
}

func TestValue_Fields(t *testing.T) {
	payload := mustPayload(t, `{"zeta":1,"alpha":"x","L1":"dup","l1":"dup2"}`)

	fields := payload.Fields()
	require.Len(t, fields, 4)

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "L1", "l1"}, keys)
	assert.Equal(t, KindNumber, fields[0].Value.Kind())
	assert.Equal(t, "x", fields[1].Value.Text())

	assert.Nil(t, mustPayload(t, `[1,2]`).Fields())
	assert.Nil(t, mustPayload(t, `"s"`).Fields())
}

func TestValue_Elements(t *testing.T) {
	elems := mustPayload(t, `[1,"two",{"three":3}]`).Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, KindNumber, elems[0].Kind())
	assert.Equal(t, "two", elems[1].Text())
	assert.Equal(t, KindObject, elems[2].Kind())

	assert.Nil(t, mustPayload(t, `{"a":1}`).Elements())
}

func TestValue_Lookup(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		key    string
		want   string
		wantOK bool
	}{
		{name: "exact", raw: `{"l1":"A"}`, key: "l1", want: `"A"`, wantOK: true},
		{name: "upper in payload", raw: `{"L1":"A"}`, key: "l1", want: `"A"`, wantOK: true},
		{name: "upper in key", raw: `{"l2":"B"}`, key: "L2", want: `"B"`, wantOK: true},
		{name: "first case variant wins", raw: `{"L3":"first","l3":"second"}`, key: "l3", want: `"first"`, wantOK: true},
		{name: "trailing space is not a match", raw: `{"L1 ":"A"}`, key: "l1"},
		{name: "prefix is not a match", raw: `{"L1_name":"A"}`, key: "l1"},
		{name: "nested keys are not searched", raw: `{"data":{"L1":"A"}}`, key: "l1"},
		{name: "array payload", raw: `[{"L1":"A"}]`, key: "l1"},
		{name: "null value still resolves", raw: `{"L1":null}`, key: "l1", want: "null", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := mustPayload(t, tt.raw).Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, v.Raw())
			}
		})
	}
}

func TestValue_Compact(t *testing.T) {
	v := mustPayload(t, "{ \"code\" : 12,\n  \"name\" : \"a b\" }")
	assert.Equal(t, `{"code":12,"name":"a b"}`, v.Compact())
}

func TestValue_ASCII(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `{"code": 12}`, want: `{"code":12}`},
		{name: "latin", raw: `{"name":"Café"}`, want: `{"name":"Caf\u00e9"}`},
		{name: "astral plane", raw: `["😀"]`, want: `["\ud83d\ude00"]`},
		{name: "already escaped", raw: `{"name":"Caf\u00e9"}`, want: `{"name":"Caf\u00e9"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustPayload(t, tt.raw).ASCII()
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.Less(t, r, rune(128))
			}
			assert.True(t, Parse(got).IsStructured(), "ASCII output must stay valid JSON")
		})
	}
}

func TestValue_Indented(t *testing.T) {
	v := mustPayload(t, `{"zeta":1,"alpha":{"L1":"A"}}`)
	out := v.Indented()

	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Less(t, strings.Index(out, `"zeta"`), strings.Index(out, `"alpha"`))
	assert.Contains(t, out, "\n  \"zeta\": 1")
	assert.True(t, Parse(out).IsStructured())

	assert.Equal(t, "{\n  \"a\": 1\n}", mustPayload(t, `{"a":1}`).Indented())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", Value{}.Kind().String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
