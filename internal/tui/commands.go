package tui

import (
	"context"
	"errors"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 5 * time.Second

// classifyCmd runs one classification off the update loop.
func classifyCmd(classifier Classifier, req model.ClassificationRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		displayed, err := classifier.ClassifyRequest(ctx, req)
		if err != nil {
			return classifyFailedMsg{err: err}
		}
		return classifiedMsg{result: displayed}
	}
}

// loadSessionCmd reads the persisted last result.
func loadSessionCmd(store storage.SessionStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		displayed, err := store.LoadLastResult(ctx)
		if errors.Is(err, common.ErrNotFound) {
			return sessionLoadedMsg{}
		}
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		return sessionLoadedMsg{result: displayed, found: true}
	}
}

// saveSessionCmd persists r as the last result.
func saveSessionCmd(store storage.SessionStore, r result.DisplayedResult) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return sessionSavedMsg{op: "save", err: store.SaveLastResult(ctx, r)}
	}
}

// clearSessionCmd removes the persisted last result.
func clearSessionCmd(store storage.SessionStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return sessionSavedMsg{op: "clear", err: store.ClearLastResult(ctx)}
	}
}
