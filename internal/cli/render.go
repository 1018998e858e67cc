package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/result"
)

// PayloadHiddenText replaces the payload when it is switched off.
const PayloadHiddenText = "Full JSON payload hidden by settings."

// RenderResult writes the structured view of r followed, when enabled, by
// its raw text. The raw text is written exactly as received.
func RenderResult(w io.Writer, r result.DisplayedResult, display config.Display) error {
	p := r.Present(result.Options{
		ShowMetrics: display.ShowMetrics,
		ShowPayload: display.ShowPayload,
	})

	header := fmt.Sprintf("%s  %s", r.Request.String(), SubtleStyle.Render(r.ClassifiedAt.Local().Format("2006-01-02 15:04:05")))
	if _, err := fmt.Fprintln(w, TitleStyle.Render("Classification")+"  "+header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if structured := RenderPresentation(p); structured != "" {
		if _, err := fmt.Fprintln(w, structured); err != nil {
			return fmt.Errorf("failed to write structured view: %w", err)
		}
	}

	if !display.ShowRaw {
		return nil
	}

	if _, err := fmt.Fprintln(w, BoldStyle.Render("Raw response")); err != nil {
		return fmt.Errorf("failed to write raw header: %w", err)
	}
	raw := r.RawView()
	if _, err := io.WriteString(w, raw); err != nil {
		return fmt.Errorf("failed to write raw response: %w", err)
	}
	if !strings.HasSuffix(raw, "\n") {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("failed to write raw response: %w", err)
		}
	}
	return nil
}

// RenderPresentation renders the warning, metrics and payload of p.
func RenderPresentation(p result.Presentation) string {
	var parts []string

	if p.HasWarning() {
		parts = append(parts, FormatWarning(p.Warning))
	}

	if p.Metrics != nil {
		var b strings.Builder
		for i, level := range p.Metrics.Levels() {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(LabelStyle.Render(fmt.Sprintf("L%d", i+1)))
			b.WriteString(BoldStyle.Render(level))
		}
		parts = append(parts, RenderBox("Categories", b.String()))
	}

	switch {
	case p.Payload != nil:
		parts = append(parts, BoldStyle.Render("Payload")+"\n"+p.PrettyPayload())
	case p.PayloadHidden:
		parts = append(parts, SubtleStyle.Render(PayloadHiddenText))
	}

	return strings.Join(parts, "\n")
}
