package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/po-classifier/internal/cli"
	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const noResultText = "No result yet. Run a classification to see results here."

func lastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the last classification result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rawOnly, _ := cmd.Flags().GetBool("raw")

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer closeSessionStore(store)

			displayed, err := store.LoadLastResult(ctx)
			if errors.Is(err, common.ErrNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(noResultText))
				return err
			}
			if err != nil {
				return fmt.Errorf("failed to load last result: %w", err)
			}

			if rawOnly {
				_, err = io.WriteString(cmd.OutOrStdout(), displayed.RawView())
				return err
			}
			return cli.RenderResult(cmd.OutOrStdout(), displayed, config.LoadDisplay(viper.GetViper()))
		},
	}

	cmd.Flags().Bool("raw", false, "Print only the raw response")
	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the last classification result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer closeSessionStore(store)

			if err := store.ClearLastResult(ctx); err != nil {
				return fmt.Errorf("failed to clear last result: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Results cleared"))
			return err
		},
	}
}
