package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive classifier and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	m := New(opts...)
	if m.classifier == nil {
		return fmt.Errorf("classifier is required")
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
