package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/llm"
	"github.com/spf13/viper"
)

// Results and page layouts.
const (
	LayoutTabs    = "tabs"
	LayoutStacked = "stacked"
	LayoutSplit   = "split"
)

// DefaultSessionPath is where the last result is kept unless session.path says otherwise.
const DefaultSessionPath = "~/.local/share/poclass/session.db"

// Display holds the toggles that decide what the results pane shows.
type Display struct {
	ResultsLayout string
	PageLayout    string
	ShowMetrics   bool
	ShowPayload   bool
	ShowRaw       bool
	ShowHero      bool
	ShowGuidance  bool
	ShowTips      bool
	Compact       bool
}

// Theme holds the configured colors and card style.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	CardStyle string
}

// SetDefaults registers default values for every key the application reads.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("display.show_metrics", true)
	v.SetDefault("display.show_payload", true)
	v.SetDefault("display.show_raw", true)
	v.SetDefault("display.show_hero", true)
	v.SetDefault("display.show_guidance", true)
	v.SetDefault("display.show_tips", true)
	v.SetDefault("display.compact", false)
	v.SetDefault("display.results_layout", LayoutTabs)
	v.SetDefault("display.page_layout", LayoutSplit)

	v.SetDefault("theme.name", "default")
	v.SetDefault("theme.card_style", "glass")

	v.SetDefault("session.path", DefaultSessionPath)
}

// LoadLLM builds the classification client configuration.
// Provider-specific environment variables fill in a missing API key.
func LoadLLM(v *viper.Viper) (llm.Config, error) {
	cfg := llm.Config{
		Provider:       strings.ToLower(v.GetString("llm.provider")),
		APIKey:         v.GetString("llm.api_key"),
		Model:          v.GetString("llm.model"),
		Endpoint:       v.GetString("llm.endpoint"),
		ClaudeCodePath: ExpandPath(v.GetString("llm.claude_code_path")),
		Temperature:    v.GetFloat64("llm.temperature"),
		MaxTokens:      v.GetInt("llm.max_tokens"),
		Timeout:        v.GetDuration("llm.timeout"),
	}

	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	switch cfg.Provider {
	case "openai", "anthropic":
		if cfg.APIKey == "" {
			return cfg, fmt.Errorf("%w: llm.api_key for provider %s", common.ErrMissingConfig, cfg.Provider)
		}
	case "http":
		if cfg.Endpoint == "" {
			return cfg, fmt.Errorf("%w: llm.endpoint for provider http", common.ErrMissingConfig)
		}
	case "claudecode":
	default:
		return cfg, fmt.Errorf("%w: %s", common.ErrUnsupportedProvider, cfg.Provider)
	}

	return cfg, nil
}

// LoadDisplay reads the display toggles. Unknown layouts fall back to the defaults.
func LoadDisplay(v *viper.Viper) Display {
	d := Display{
		ShowMetrics:   v.GetBool("display.show_metrics"),
		ShowPayload:   v.GetBool("display.show_payload"),
		ShowRaw:       v.GetBool("display.show_raw"),
		ShowHero:      v.GetBool("display.show_hero"),
		ShowGuidance:  v.GetBool("display.show_guidance"),
		ShowTips:      v.GetBool("display.show_tips"),
		Compact:       v.GetBool("display.compact"),
		ResultsLayout: strings.ToLower(v.GetString("display.results_layout")),
		PageLayout:    strings.ToLower(v.GetString("display.page_layout")),
	}

	if d.ResultsLayout != LayoutTabs && d.ResultsLayout != LayoutStacked {
		d.ResultsLayout = LayoutTabs
	}
	if d.PageLayout != LayoutSplit && d.PageLayout != LayoutStacked {
		d.PageLayout = LayoutSplit
	}

	return d
}

// LoadTheme reads the theme settings.
func LoadTheme(v *viper.Viper) Theme {
	return Theme{
		Name:      v.GetString("theme.name"),
		Primary:   v.GetString("theme.primary"),
		Secondary: v.GetString("theme.secondary"),
		CardStyle: strings.ToLower(v.GetString("theme.card_style")),
	}
}

// SessionPath returns the expanded path of the last-result database, or "" when
// session.path is set to an empty string.
func SessionPath(v *viper.Viper) string {
	return ExpandPath(v.GetString("session.path"))
}
