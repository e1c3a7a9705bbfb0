package cmd

import (
	"github.com/spf13/cobra"

	"stackdeck/core"
	"stackdeck/internal/outwriter"
)

var adminCmd = &cobra.Command{
	Use:     "admin",
	Short:   "Print the aggregate principle rankings from the remote results store",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := dialResults(rootCtx)
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.ListAll(rootCtx)
		if err != nil {
			return err
		}

		report := core.AggregateResults(rows)
		report.Rankings = core.TopRankings(report, cfg.ResultLimit)
		return outwriter.NewOutWriter().WriteRankings(report, cfg)
	},
}
