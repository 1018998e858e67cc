package main

import (
	"context"
	"log/slog"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/engine"
	"github.com/Veraticus/po-classifier/internal/llm"
	"github.com/Veraticus/po-classifier/internal/storage"
	"github.com/spf13/viper"
)

var errSessionDisabled = common.NewUserError(
	"Session persistence is disabled; set session.path to enable it.",
	common.ErrMissingConfig,
)

// newClassificationEngine builds the engine for the configured provider.
func newClassificationEngine(logger *slog.Logger) (*engine.ClassificationEngine, error) {
	llmConfig, err := config.LoadLLM(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("The classification service is not configured: "+err.Error(), err)
	}

	client, err := llm.NewClient(llmConfig)
	if err != nil {
		return nil, common.NewUserError("Failed to create the classification client: "+err.Error(), err)
	}

	slog.Debug("Classification client ready", "provider", llmConfig.Provider)
	return engine.New(client, logger), nil
}

// openSessionStore opens the last-result database. It returns
// errSessionDisabled when session.path is empty.
func openSessionStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	path := config.SessionPath(viper.GetViper())
	if path == "" {
		return nil, errSessionDisabled
	}

	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, common.NewUserError("Failed to open the session database", err)
	}
	return store, nil
}

func closeSessionStore(store *storage.SQLiteStorage) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		slog.Error("Failed to close session database", "error", err)
	}
}
