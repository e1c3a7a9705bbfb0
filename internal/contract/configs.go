package contract

import (
	"fmt"
	"net/url"
	"strings"

	"stackdeck/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultAdminToken  = "admin"
)

// Config holds the validated runtime configuration.
// Fields that require parsing or validation are set by ProcessAndValidate
// from the raw viper-unmarshaled input.
type Config struct {
	StoreBackend     schema.StoreBackend // Local session store backend
	StoreConnect     string              // DSN for mysql/postgresql; file path for sqlite ("" = default)
	ResultsEndpoint  string              // Remote results endpoint (postgres URL, no credentials)
	ResultsAccessKey string              // Access key injected into the endpoint DSN
	AdminToken       string              // Reserved user name that opens the admin branch
	UserName         string              // Positional user name argument ("" = prompt interactively)
	ResultLimit      int                 // Maximum number of principles in aggregate output
	Precision        int                 // Decimal precision for numeric columns (1 or 2)
	Output           schema.OutputMode   // Output format for non-interactive commands
	OutputFile       string              // Optional path to write output to
	Width            int                 // Terminal width override (0 = auto-detect)
	Color            bool                // Colored labels in table output
}

// ConfigRawInput holds the raw values resolved by viper from defaults, config
// file, environment and flags, before validation.
type ConfigRawInput struct {
	StoreBackend     string `mapstructure:"store-backend"`
	StoreConnect     string `mapstructure:"store-db-connect"`
	ResultsEndpoint  string `mapstructure:"results-endpoint"`
	ResultsAccessKey string `mapstructure:"results-access-key"`
	AdminToken       string `mapstructure:"admin-token"`
	ResultLimit      int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	ColorStr         string `mapstructure:"color"`
	UserName         string `mapstructure:"-"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Precision Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 4. Store Backend Validation ---
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, memory", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect

	// --- 5. Admin Token ---
	cfg.AdminToken = strings.TrimSpace(input.AdminToken)
	if cfg.AdminToken == "" {
		return fmt.Errorf("admin token cannot be empty")
	}

	// --- 6. Color and Width ---
	colorOn, err := ParseBoolString(input.ColorStr)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.Color = colorOn
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 7. Remote settings pass through unvalidated here ---
	// Commands that touch the remote store call ValidateRemote and fail fast
	// before constructing the gateway. There are no fallback credentials.
	cfg.ResultsEndpoint = strings.TrimSpace(input.ResultsEndpoint)
	cfg.ResultsAccessKey = strings.TrimSpace(input.ResultsAccessKey)

	cfg.UserName = strings.TrimSpace(input.UserName)
	return nil
}

// ValidateRemote checks that the remote results configuration is complete and
// well-formed. It is called once, before the result store is constructed, by
// every path that needs the remote table.
func ValidateRemote(cfg *Config) error {
	if cfg.ResultsEndpoint == "" {
		return fmt.Errorf("results-endpoint is required (set STACKDECK_RESULTS_ENDPOINT or the results-endpoint config key)")
	}
	u, err := url.Parse(cfg.ResultsEndpoint)
	if err != nil {
		return fmt.Errorf("invalid results-endpoint %q: %w", cfg.ResultsEndpoint, err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("results-endpoint must be a postgres:// URL (received scheme %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("results-endpoint %q has no host", cfg.ResultsEndpoint)
	}
	if cfg.ResultsAccessKey == "" {
		return fmt.Errorf("results-access-key is required (set STACKDECK_RESULTS_ACCESS_KEY or the results-access-key config key)")
	}
	return nil
}

// IsAdminName reports whether the given user name matches the reserved admin
// token, case-insensitively.
func (c *Config) IsAdminName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), c.AdminToken)
}
