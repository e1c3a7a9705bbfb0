package cmd

import (
	"github.com/spf13/cobra"

	"stackdeck/core"
	"stackdeck/internal/sessionstore"
	"stackdeck/internal/ui"
)

var swipeCmd = &cobra.Command{
	Use:     "swipe [user-name]",
	Short:   "Start or resume an interactive swipe session",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		store := sessionstore.Manager.Store()
		if cfg.UserName != "" {
			session := core.NewSession(store, cfg)
			if err := session.Start(cfg.UserName); err != nil {
				return err
			}
			return ui.Run(session, cfg, dialResults)
		}
		// No name given: resume the last active user if there is one,
		// otherwise the entry prompt asks for a name.
		session, err := core.ResumeLast(store, cfg)
		if err != nil {
			return err
		}
		return ui.Run(session, cfg, dialResults)
	},
}
