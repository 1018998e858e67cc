package themes

import (
	"strings"

	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Card styles.
const (
	CardGlass = "glass"
	CardSolid = "solid"
)

// Palette holds the colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
}

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Code          lipgloss.Style
	Label         lipgloss.Style
	Hint          lipgloss.Style
	Card          lipgloss.Style
	Metric        lipgloss.Style
	MetricLabel   lipgloss.Style
	MetricValue   lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	FocusedField  lipgloss.Style
	BlurredField  lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Name          string
	CardStyle     string
	Palette       Palette
}

var defaultPalette = Palette{
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#3b82f6"),
	Foreground: lipgloss.Color("#fafafa"),
	Subtle:     lipgloss.Color("#a3a3a3"),
	Surface:    lipgloss.Color("#262626"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),
}

var catppuccinMochaPalette = Palette{
	Primary:    lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#f5c2e7"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Info:       lipgloss.Color("#89dceb"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Subtle:     lipgloss.Color("#a6adc8"),
	Surface:    lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),
}

// Default is the default theme.
var Default = New("default", defaultPalette, CardGlass)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New("catppuccin-mocha", catppuccinMochaPalette, CardGlass)

// New builds a theme from a palette. Glass cards use a rounded border,
// solid cards a plain one on a filled surface.
func New(name string, p Palette, cardStyle string) Theme {
	border := lipgloss.RoundedBorder()
	card := lipgloss.NewStyle().Padding(1, 2)
	if cardStyle == CardSolid {
		border = lipgloss.NormalBorder()
		card = card.Background(p.Surface)
	} else {
		cardStyle = CardGlass
	}

	return Theme{
		Name:      name,
		CardStyle: cardStyle,
		Palette:   p,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.Foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Foreground),
		Code: lipgloss.NewStyle().
			Foreground(p.Foreground),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Hint: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),

		// Component styles
		Card: card.
			Border(border).
			BorderForeground(p.Border),
		Metric: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Secondary).
			Padding(0, 1),
		MetricLabel: lipgloss.NewStyle().
			Foreground(p.Muted),
		MetricValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			Background(p.Primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		FocusedField: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Primary),
		BlurredField: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Border),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Info).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// FromConfig resolves the configured theme. Colors that are not
// #rrggbb fall back to the named theme's own colors.
func FromConfig(cfg config.Theme) Theme {
	base := GetTheme(cfg.Name)
	p := base.Palette
	if IsHexColor(cfg.Primary) {
		p.Primary = lipgloss.Color(strings.ToLower(cfg.Primary))
	}
	if IsHexColor(cfg.Secondary) {
		p.Secondary = lipgloss.Color(strings.ToLower(cfg.Secondary))
	}
	return New(base.Name, p, strings.ToLower(strings.TrimSpace(cfg.CardStyle)))
}

// IsHexColor reports whether s has the form #rrggbb.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Compact returns a copy of t with tighter card padding.
func (t Theme) Compact() Theme {
	t.Card = t.Card.Padding(0, 1)
	return t
}
