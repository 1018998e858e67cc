package llm

import (
	"fmt"
	"strings"

	"github.com/Veraticus/po-classifier/internal/common"
)

// NewClient creates a classification client for the configured provider.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	case "claudecode":
		return newClaudeCodeClient(cfg)
	case "http":
		return newEndpointClient(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedProvider, cfg.Provider)
	}
}
