package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/charmbracelet/lipgloss"
)

const minSplitWidth = 100

// Fixed texts shown in the results pane.
const (
	PlaceholderText   = "Run a classification to see results here."
	PayloadHiddenText = "Full JSON payload hidden by settings."
	EmptyRawText      = "(empty response)"
)

var tips = []string{
	"Include quantity, model numbers and specs.",
	"Missing levels are shown as N/A.",
	"The raw view always shows the response exactly as received.",
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.display.ShowHero {
		sections = append(sections, m.renderHero())
	}

	formWidth, resultsWidth := m.columnWidths()
	form := m.renderFormColumn(formWidth)
	results := m.renderResults(resultsWidth)

	if m.isSplit() {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, form, " ", results))
	} else {
		sections = append(sections, form, results)
	}

	sections = append(sections, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHero() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("PO Category Classifier"),
		m.theme.Subtitle.Render("Classify purchase-order line items into L1 / L2 / L3 categories."),
		"",
	)
}

// renderFormColumn renders the inputs with the optional guidance and tips.
func (m Model) renderFormColumn(width int) string {
	fieldStyle := func(f Field) lipgloss.Style {
		if m.focus == f {
			return m.theme.FocusedField
		}
		return m.theme.BlurredField
	}

	lines := []string{
		m.theme.Label.Render("PO description"),
		fieldStyle(FieldDescription).Render(m.description.View()),
		m.theme.Hint.Render("Example: " + ExampleDescription),
		m.theme.Label.Render("Supplier"),
		fieldStyle(FieldSupplier).Render(m.supplier.View()),
	}

	if m.validation != "" {
		lines = append(lines, m.theme.StatusWarning.Render(m.validation))
	}

	if m.inFlight {
		lines = append(lines, m.spinner.View()+" "+m.theme.StatusPending.Render("Classifying..."))
	} else {
		lines = append(lines, m.theme.Hint.Render(fmt.Sprintf("Press %s to classify.", m.keymap.Submit.Help().Key)))
	}

	if m.display.ShowGuidance {
		lines = append(lines, "",
			m.theme.Subtitle.Width(max(width-2, 10)).Render(
				"Describe the line item as written on the PO. Add the supplier when known; it often settles the category."))
	}

	if m.display.ShowTips {
		lines = append(lines, "", m.theme.Label.Render("Tips"))
		for _, tip := range tips {
			lines = append(lines, m.theme.Hint.Render("• "+tip))
		}
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderResults renders the results card around the viewport.
func (m Model) renderResults(width int) string {
	lines := []string{m.theme.Bold.Render("Results")}

	if m.lastError != nil {
		lines = append(lines, m.theme.StatusError.Render("✗ Classification failed: "+common.UserMessage(m.lastError)))
	}
	if m.storeError != nil {
		lines = append(lines, m.theme.Hint.Render("Session store: "+m.storeError.Error()))
	}

	if current, ok := m.slot.Current(); ok {
		lines = append(lines, m.theme.Subtitle.Render(fmt.Sprintf("%s · %s",
			current.ClassifiedAt.Local().Format("15:04:05"), current.Request.String())))
		if m.showTabs() {
			lines = append(lines, m.renderTabBar())
		}
	}

	lines = append(lines, m.viewport.View())

	cardWidth := max(width-m.theme.Card.GetHorizontalBorderSize(), 10)
	return m.theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) showTabs() bool {
	return m.display.ResultsLayout == config.LayoutTabs && m.display.ShowRaw
}

func (m Model) renderTabBar() string {
	structured, raw := m.theme.TabInactive, m.theme.TabInactive
	if m.tab == TabRaw {
		raw = m.theme.TabActive
	} else {
		structured = m.theme.TabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		structured.Render("Structured"),
		" ",
		raw.Render("Raw"),
	)
}

// renderResultsBody renders the scrollable part of the results pane.
func (m Model) renderResultsBody() string {
	current, ok := m.slot.Current()
	if !ok {
		return m.theme.Hint.Render(PlaceholderText)
	}

	p := current.Present(result.Options{
		ShowMetrics: m.display.ShowMetrics,
		ShowPayload: m.display.ShowPayload,
	})
	structured := m.renderStructured(p)

	if !m.display.ShowRaw {
		return structured
	}

	if m.showTabs() {
		if m.tab == TabRaw {
			// The warning stays visible next to the raw text.
			if p.HasWarning() {
				return m.renderWarning(p.Warning) + "\n\n" + renderRaw(current)
			}
			return renderRaw(current)
		}
		return structured
	}

	return structured + "\n\n" + m.theme.Label.Render("Raw response") + "\n" + renderRaw(current)
}

func (m Model) renderStructured(p result.Presentation) string {
	var parts []string

	if p.HasWarning() {
		parts = append(parts, m.renderWarning(p.Warning))
	}

	if p.Metrics != nil {
		levels := p.Metrics.Levels()
		cards := make([]string, 0, len(levels))
		for i, level := range levels {
			cards = append(cards, m.theme.Metric.Render(
				m.theme.MetricLabel.Render(fmt.Sprintf("L%d", i+1))+"\n"+m.theme.MetricValue.Render(level)))
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	switch {
	case p.Payload != nil:
		parts = append(parts, m.theme.Label.Render("Payload")+"\n"+m.theme.Code.Render(p.PrettyPayload()))
	case p.PayloadHidden:
		parts = append(parts, m.theme.Hint.Render(PayloadHiddenText))
	}

	return strings.Join(parts, "\n\n")
}

func (m Model) renderWarning(warning string) string {
	return m.theme.StatusWarning.Render("⚠ " + warning)
}

// renderRaw returns the raw response unstyled.
func renderRaw(r result.DisplayedResult) string {
	raw := r.RawView()
	if raw == "" {
		return EmptyRawText
	}
	return raw
}
