package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/treyhoover/svgs/internal/batch"
)

func newAnnotateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "annotate <directory>",
		Short: "Describe every vector file directly inside a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(ctx, cmd, args[0], batch.ModeFlat)
		},
	}
}

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <directory>",
		Short: "Describe category subdirectories and write a grouped catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(ctx, cmd, args[0], batch.ModeGrouped)
		},
	}
}

func runBatch(ctx *commandContext, cmd *cobra.Command, rootArg string, mode batch.Mode) error {
	root, err := filepath.Abs(rootArg)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("inspect directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	runner, _, err := ctx.buildRunner()
	if err != nil {
		return err
	}

	summary, err := runner.Run(cmd.Context(), root, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummary(summary, isTerminal(os.Stdout)))
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d items failed", summary.Failed, summary.Found)
	}
	return nil
}
