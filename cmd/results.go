package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackdeck/internal/contract"
	"stackdeck/internal/outwriter"
	"stackdeck/internal/parquet"
	"stackdeck/internal/results"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage the remote results store",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var resultsMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Run schema migrations against the remote results store",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := contract.ValidateRemote(cfg); err != nil {
			return err
		}
		targetVersion, err := cmd.Flags().GetInt("target-version")
		if err != nil {
			return err
		}
		return results.MigrateResults(cfg.ResultsEndpoint, cfg.ResultsAccessKey, targetVersion)
	},
}

var resultsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show remote results store health and submission count",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := dialResults(rootCtx)
		if err != nil {
			return err
		}
		defer store.Close()

		status, err := store.Status(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteResultsStatus(status, cfg)
	},
}

var resultsExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export all remote submissions to a parquet file",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if cfg.OutputFile == "" {
			return fmt.Errorf("results export requires --output-file")
		}

		store, err := dialResults(rootCtx)
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.ListAll(rootCtx)
		if err != nil {
			return err
		}

		records, err := parquet.ConvertResults(rows)
		if err != nil {
			return err
		}
		if err := parquet.WriteResultsParquet(records, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("💾 Wrote %d submissions to %s\n", len(records), cfg.OutputFile)
		return nil
	},
}
