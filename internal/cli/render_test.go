package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/testutil/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDisplay() config.Display {
	return config.Display{
		ResultsLayout: config.LayoutStacked,
		ShowMetrics:   true,
		ShowPayload:   true,
		ShowRaw:       true,
	}
}

func displayed(raw string) result.DisplayedResult {
	return result.NewDisplayedResult(
		model.ClassificationRequest{Description: "12x monitors", Supplier: "Dell"},
		raw,
		time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	)
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		display     config.Display
		contains    []string
		notContains []string
	}{
		{
			name:    "structured object",
			raw:     `{"L1":"Electronics","L2":"Computing","L3":"Monitors"}`,
			display: fullDisplay(),
			contains: []string{
				"Electronics", "Computing", "Monitors",
				`"L2": "Computing"`,
				"Raw response",
				`{"L1":"Electronics","L2":"Computing","L3":"Monitors"}`,
				`"12x monitors" (supplier "Dell")`,
			},
			notContains: []string{result.WarningUnstructured},
		},
		{
			name:        "unstructured",
			raw:         "not json",
			display:     fullDisplay(),
			contains:    []string{result.WarningUnstructured, "Raw response", "not json"},
			notContains: []string{"Categories", "Payload"},
		},
		{
			name:        "missing levels",
			raw:         `{"l2":{"code":12}}`,
			display:     fullDisplay(),
			contains:    []string{"N/A", `{"code":12}`},
			notContains: []string{result.WarningUnstructured},
		},
		{
			name: "payload hidden and raw off",
			raw:  `{"L1":"Office"}`,
			display: config.Display{
				ShowMetrics: true,
			},
			contains:    []string{"Office", PayloadHiddenText},
			notContains: []string{"Raw response", "Payload\n"},
		},
		{
			name:        "array payload has no metrics",
			raw:         `["a","b"]`,
			display:     fullDisplay(),
			contains:    []string{"Payload", `"a"`},
			notContains: []string{"Categories", result.WarningUnstructured},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderResult(&buf, displayed(tt.raw), tt.display))

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderResult_RawVerbatim(t *testing.T) {
	raws := []string{
		"  {\"L1\": \"Café\"}\r\n",
		"\tindented\ttext",
		"```json\n{\"L1\":\"A\"}\n```\n",
	}

	for _, raw := range raws {
		var buf bytes.Buffer
		require.NoError(t, RenderResult(&buf, displayed(raw), fullDisplay()))

		out := buf.String()
		idx := strings.Index(out, "Raw response\n")
		require.GreaterOrEqual(t, idx, 0)
		tail := out[idx+len("Raw response\n"):]
		assert.True(t, strings.HasPrefix(tail, raw), "raw text must be written unchanged")
	}
}

func TestRenderPresentation_Empty(t *testing.T) {
	assert.Empty(t, RenderPresentation(result.Presentation{}))
}

func TestRenderResult_Cases(t *testing.T) {
	for _, c := range responses.Cases {
		t.Run(c.Name, func(t *testing.T) {
			r := responses.NewBuilder(t).WithRaw(c.Raw).Build()

			var buf bytes.Buffer
			require.NoError(t, RenderResult(&buf, r, fullDisplay()))
			out := buf.String()

			if !c.Structured {
				assert.Contains(t, out, result.WarningUnstructured)
				assert.NotContains(t, out, "Categories")
				return
			}

			assert.NotContains(t, out, result.WarningUnstructured)
			for _, level := range c.Levels {
				if c.HasMetrics {
					assert.Contains(t, out, level)
				}
			}
		})
	}
}
