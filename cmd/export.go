package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackdeck/core"
	"stackdeck/internal/outwriter"
	"stackdeck/internal/sessionstore"
)

var exportCmd = &cobra.Command{
	Use:     "export [user-name]",
	Short:   "Export a completed local session in the configured output format",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		userName, err := resolveUserName(args)
		if err != nil {
			return err
		}
		rec, ok, err := sessionstore.Manager.Store().LoadRecord(userName)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no session found for %s", userName)
		}

		export, err := core.ExportFromRecord(rec)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteExport(export, cfg)
	},
}
