package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/tui"
	"github.com/Veraticus/po-classifier/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive classification form",
		Long: `Open the interactive form: enter a PO description and an optional
supplier, press Ctrl+S to classify, and browse the structured and raw
views of the result. Press F1 for all key bindings.`,
		RunE: runUI,
	}

	cmd.Flags().String("log-file", "", "Write logs to this file while the UI is open (default: discard)")

	return cmd
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	v := viper.GetViper()

	// The UI owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := uiLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	classifier, err := newClassificationEngine(logger)
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithClassifier(classifier),
		tui.WithTheme(themes.FromConfig(config.LoadTheme(v))),
		tui.WithDisplay(config.LoadDisplay(v)),
		tui.WithLogger(logger),
		tui.WithTimeout(2 * v.GetDuration("llm.timeout")),
	}

	store, err := openSessionStore(ctx)
	switch {
	case err == nil:
		defer closeSessionStore(store)
		opts = append(opts, tui.WithStore(store))
	case errors.Is(err, errSessionDisabled):
	default:
		logger.Warn("Session persistence unavailable", "error", err)
	}

	return tui.Run(ctx, opts...)
}

func uiLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if path != "" {
		f, openErr := os.OpenFile(config.ExpandPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", openErr)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	logger, err := common.NewLogger(w, level, viper.GetString("logging.format"))
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}
