package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackdeck/core"
	"stackdeck/internal/sessionstore"
)

var submitCmd = &cobra.Command{
	Use:     "submit [user-name]",
	Short:   "Submit a completed local session to the remote results store",
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

		row, err := core.ResultRowFromRecord(rec)
		if err != nil {
			return err
		}

		store, err := dialResults(rootCtx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Insert(rootCtx, row); err != nil {
			return err
		}
		fmt.Printf("✅ Submitted results for %s\n", row.UserName)
		return nil
	},
}
