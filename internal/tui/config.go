package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/storage"
	"github.com/Veraticus/po-classifier/internal/tui/themes"
)

// Classifier produces a displayed result for a validated request.
type Classifier interface {
	ClassifyRequest(ctx context.Context, req model.ClassificationRequest) (result.DisplayedResult, error)
}

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Classifier Classifier
	Store      storage.SessionStore
	Logger     *slog.Logger
	Display    config.Display
	Timeout    time.Duration
	Width      int
	Height     int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme: themes.Default,
		Display: config.Display{
			ResultsLayout: config.LayoutTabs,
			PageLayout:    config.LayoutSplit,
			ShowMetrics:   true,
			ShowPayload:   true,
			ShowRaw:       true,
			ShowHero:      true,
			ShowGuidance:  true,
			ShowTips:      true,
		},
		Timeout: 60 * time.Second,
		Width:   100,
		Height:  30,
	}
}

// WithClassifier sets the classifier used on submit.
func WithClassifier(classifier Classifier) Option {
	return func(c *Config) {
		c.Classifier = classifier
	}
}

// WithStore enables persistence of the last result.
func WithStore(store storage.SessionStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithDisplay sets the display toggles and layouts.
func WithDisplay(display config.Display) Option {
	return func(c *Config) {
		c.Display = display
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTimeout bounds each classification call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
