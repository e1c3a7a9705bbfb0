package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stackdeck/internal/contract"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(swipeCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionClearCmd)

	resultsCmd.AddCommand(resultsMigrateCmd)
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsExportCmd)

	pFlags := rootCmd.PersistentFlags()
	pFlags.String("config", "", "Config file (default is ./.stackdeck.yaml or $HOME/.stackdeck.yaml)")
	pFlags.String("store-backend", "sqlite", "Session store backend: sqlite, mysql, postgresql or memory")
	pFlags.String("store-db-connect", "", "Session store DSN for mysql/postgresql, or file path for sqlite")
	pFlags.String("results-endpoint", "", "Remote results endpoint (postgres URL without credentials)")
	pFlags.String("results-access-key", "", "Access key for the remote results endpoint")
	pFlags.String("admin-token", contract.DefaultAdminToken, "Reserved user name that opens the admin view")
	pFlags.IntP("limit", "l", contract.DefaultResultLimit, "Maximum number of principles in aggregate output")
	pFlags.Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (1 or 2)")
	pFlags.StringP("output", "o", "text", "Output format: text, csv, json or parquet")
	pFlags.String("output-file", "", "Write output to a file instead of stdout")
	pFlags.Int("width", 0, "Terminal width override for table output (0 = auto-detect)")
	pFlags.String("color", "yes", "Colored labels in table output: yes or no")

	sessionClearCmd.Flags().Bool("all", false, "Delete every stored session instead of just the resume pointer")
	resultsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 latest, 0 rollback all)")

	if err := viper.BindPFlags(pFlags); err != nil {
		contract.LogFatal("failed to bind flags", err)
	}
}
