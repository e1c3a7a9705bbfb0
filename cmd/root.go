package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stackdeck/internal/contract"
	"stackdeck/internal/results"
	"stackdeck/internal/sessionstore"
	"stackdeck/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "stackdeck",
	Short:              "Collect and rank team principles through quick swipe decisions.",
	Long:               `Stackdeck walks each person through a deck of principles, records what they keep or discard, lets them rank their top picks, and aggregates everyone's submissions into a team-wide ranking.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".stackdeck") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("STACKDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("store-backend", string(schema.SQLiteBackend))
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("results-endpoint", "")
	viper.SetDefault("results-access-key", "")
	viper.SetDefault("admin-token", contract.DefaultAdminToken)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle the positional user-name argument (which Viper doesn't do).
	if len(args) == 1 {
		input.UserName = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	color.NoColor = !cfg.Color

	// 5. Initialize the local session store with validated config
	if err := sessionstore.InitStore(cfg.StoreBackend, cfg.StoreConnect); err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// dialResults validates the remote configuration and connects to the results
// store. Every remote path goes through this; missing endpoint or access key
// fails here, before any row is touched.
func dialResults(ctx context.Context) (contract.ResultStore, error) {
	if err := contract.ValidateRemote(cfg); err != nil {
		return nil, err
	}
	return results.NewResultStore(ctx, cfg.ResultsEndpoint, cfg.ResultsAccessKey)
}

// resolveUserName picks the user for record-level commands: the positional
// argument if given, otherwise the last active user.
func resolveUserName(args []string) (string, error) {
	if len(args) == 1 {
		if name := strings.TrimSpace(args[0]); name != "" {
			return name, nil
		}
	}
	name, ok, err := sessionstore.Manager.Store().LastActiveUser()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no user name given and no active session to fall back to")
	}
	return name, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
