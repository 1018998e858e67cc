package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/po-classifier/internal/cli"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [description]",
		Short: "Classify one PO line item",
		Long: `Classify one PO line item and print the L1/L2/L3 categories, the full
payload and the raw response.

The description can be given with --description or as arguments.

Examples:
  poclass classify -d "12x Dell UltraSharp U2723QE monitors, 27-inch, USB-C" -s Dell
  poclass classify "A4 copy paper, 80gsm, 5 reams"
  poclass classify --raw "toner cartridge"   # print only the raw response`,
		RunE: runClassify,
	}

	// Flags
	cmd.Flags().StringP("description", "d", "", "PO line-item description")
	cmd.Flags().StringP("supplier", "s", "", "Supplier name (optional)")
	cmd.Flags().Bool("raw", false, "Print only the raw response")
	cmd.Flags().Bool("no-save", false, "Do not replace the stored last result")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description, _ := cmd.Flags().GetString("description")
	supplier, _ := cmd.Flags().GetString("supplier")
	rawOnly, _ := cmd.Flags().GetBool("raw")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if description == "" {
		description = strings.Join(args, " ")
	}

	// Validate before touching provider configuration.
	req, err := model.NewClassificationRequest(description, supplier)
	if err != nil {
		return err
	}

	classifier, err := newClassificationEngine(slog.Default())
	if err != nil {
		return err
	}

	var displayed result.DisplayedResult
	err = cli.WithSpinner(ctx, cmd.ErrOrStderr(), "Classifying...", func(ctx context.Context) error {
		var classifyErr error
		displayed, classifyErr = classifier.ClassifyRequest(ctx, req)
		return classifyErr
	})
	if err != nil {
		return err
	}

	if !noSave {
		saveLastResult(ctx, displayed)
	}

	out := cmd.OutOrStdout()
	if rawOnly {
		_, err := io.WriteString(out, displayed.RawView())
		return err
	}
	return cli.RenderResult(out, displayed, config.LoadDisplay(viper.GetViper()))
}

// saveLastResult stores r as the last result. Failures are logged only.
func saveLastResult(ctx context.Context, r result.DisplayedResult) {
	store, err := openSessionStore(ctx)
	if errors.Is(err, errSessionDisabled) {
		return
	}
	if err != nil {
		slog.Warn("Failed to open session database", "error", err)
		return
	}
	defer closeSessionStore(store)

	if err := store.SaveLastResult(ctx, r); err != nil {
		slog.Warn("Failed to save last result", "error", err)
	}
}
