package cmd

import (
	"github.com/spf13/cobra"

	"stackdeck/internal/contract"
	"stackdeck/internal/mcp"
	"stackdeck/internal/sessionstore"
)

var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Run the MCP server exposing rankings and session summaries over stdio",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// The results store is optional here: without remote config the
		// rankings tool reports a per-call error while the local tools
		// keep working.
		var resultStore contract.ResultStore
		if contract.ValidateRemote(cfg) == nil {
			store, err := dialResults(rootCtx)
			if err != nil {
				return err
			}
			defer store.Close()
			resultStore = store
		}
		return mcp.StartMCPServer(rootCtx, cfg, sessionstore.Manager.Store(), resultStore)
	},
}
