package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackdeck/internal/contract"
	"stackdeck/internal/outwriter"
	"stackdeck/internal/sessionstore"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or clear the local session store",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show local session store health and stored session count",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		status, err := sessionstore.Manager.Store().Status()
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteStoreStatus(status, cfg)
	},
}

var sessionClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Reset the last-active-user pointer, or wipe all sessions with --all",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		if !all {
			// Stored records survive; the next swipe starts at the entry
			// prompt instead of resuming.
			if err := sessionstore.Manager.Store().ClearLastActiveUser(); err != nil {
				return err
			}
			fmt.Println("✅ Last active user cleared")
			return nil
		}

		sessionstore.CloseStore()
		dbPath := cfg.StoreConnect
		if dbPath == "" {
			dbPath = contract.GetSessionDBFilePath()
		}
		if err := sessionstore.ClearLocal(cfg.StoreBackend, dbPath, cfg.StoreConnect); err != nil {
			return err
		}
		fmt.Println("🧹 Local session store cleared")
		return nil
	},
}
