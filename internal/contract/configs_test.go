package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/schema"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		StoreBackend: "sqlite",
		AdminToken:   DefaultAdminToken,
		ResultLimit:  DefaultResultLimit,
		Precision:    DefaultPrecision,
		Output:       string(schema.TextOut),
		ColorStr:     "yes",
	}
}

// TestProcessAndValidate tests config parsing and validation.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.True(t, cfg.Color)
	})

	t.Run("limit bounds", func(t *testing.T) {
		input := validInput()
		input.ResultLimit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.ResultLimit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid output", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid backend", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "redis"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("empty admin token", func(t *testing.T) {
		input := validInput()
		input.AdminToken = "  "
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("backend and output are case-insensitive", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "SQLite"
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})
}

// TestValidateRemote tests the fail-fast remote configuration checks.
func TestValidateRemote(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		cfg := &Config{
			ResultsEndpoint:  "postgres://stackdeck@db.example.com:5432/results",
			ResultsAccessKey: "secret123",
		}
		assert.NoError(t, ValidateRemote(cfg))
	})

	t.Run("missing endpoint", func(t *testing.T) {
		cfg := &Config{ResultsAccessKey: "secret123"}
		assert.Error(t, ValidateRemote(cfg))
	})

	t.Run("missing access key", func(t *testing.T) {
		cfg := &Config{ResultsEndpoint: "postgres://db.example.com/results"}
		assert.Error(t, ValidateRemote(cfg))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		cfg := &Config{
			ResultsEndpoint:  "https://db.example.com/results",
			ResultsAccessKey: "secret123",
		}
		assert.Error(t, ValidateRemote(cfg))
	})
}

// TestIsAdminName tests case-insensitive admin token matching.
func TestIsAdminName(t *testing.T) {
	cfg := &Config{AdminToken: "admin"}
	assert.True(t, cfg.IsAdminName("admin"))
	assert.True(t, cfg.IsAdminName("ADMIN"))
	assert.True(t, cfg.IsAdminName("  Admin "))
	assert.False(t, cfg.IsAdminName("administrator"))
	assert.False(t, cfg.IsAdminName(""))
}

// TestGetPlainLabel tests consensus label thresholds.
func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, StrongValue, GetPlainLabel(92))
	assert.Equal(t, StrongValue, GetPlainLabel(80))
	assert.Equal(t, FavoredValue, GetPlainLabel(65))
	assert.Equal(t, ContestedValue, GetPlainLabel(41.5))
	assert.Equal(t, RejectedValue, GetPlainLabel(0))
}

// TestTruncateText tests display truncation.
func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "a ver...", TruncateText("a very long principle", 8))
	// Widths of 3 or less leave the text untouched
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3))
}

// TestParseBoolString tests boolean parsing.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
