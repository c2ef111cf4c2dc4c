package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/platefit/platefit/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultTimezone  = "Asia/Kolkata"
	MaxPrecision     = 2
)

// TimeFormat is the default time representation.
var TimeFormat = time.RFC3339

// Config holds the validated runtime configuration for one invocation.
// Simple fields are copied straight from the raw input; fields that need
// parsing (booleans, enums, the reference time) are set by
// ProcessAndValidate.
type Config struct {
	RestaurantID string                 // Restaurant identifier for menu lookup
	UserID       string                 // User identifier for profile lookup
	IsGroup      bool                   // Group dining flag (parsed from text)
	Cuisine      string                 // Optional cuisine tag for the adjuster
	Timezone     string                 // IANA timezone for meal-window resolution
	Now          time.Time              // Reference time; zero means wall clock
	Output       schema.OutputMode      // Output format
	OutputFile   string                 // Optional file to write output to
	Precision    int                    // Decimal precision for numeric columns (1 or 2)
	Detail       bool                   // Show sub-score columns
	Explain      bool                   // Show per-dish breakdown
	Width        int                    // Terminal width override, 0 = auto
	StoreBackend schema.DatabaseBackend // Record store backend
	StoreConnect string                 // Record store connection string
}

// ConfigRawInput holds the raw string inputs from flags, env and config
// file that require parsing or validation. Viper unmarshals into this.
type ConfigRawInput struct {
	RestaurantID string `mapstructure:"restaurant-id"`
	UserID       string `mapstructure:"user-id"`
	IsGroupStr   string `mapstructure:"group"`
	Cuisine      string `mapstructure:"cuisine"`
	Timezone     string `mapstructure:"timezone"`
	NowStr       string `mapstructure:"now"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Detail       bool   `mapstructure:"detail"`
	Explain      bool   `mapstructure:"explain"`
	Width        int    `mapstructure:"width"`
	StoreBackend string `mapstructure:"store-backend"`
	StoreConnect string `mapstructure:"store-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Identifiers ---
	cfg.RestaurantID = strings.TrimSpace(input.RestaurantID)
	cfg.UserID = strings.TrimSpace(input.UserID)

	// --- 2. Group flag (textual "true"/"false", case-insensitive) ---
	cfg.IsGroup = ParseBoolString(input.IsGroupStr)

	// --- 3. Cuisine and timezone ---
	cfg.Cuisine = strings.TrimSpace(input.Cuisine)
	cfg.Timezone = strings.TrimSpace(input.Timezone)
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}

	// --- 4. Reference time ---
	cfg.Now = time.Time{}
	if input.NowStr != "" {
		t, err := time.Parse(time.RFC3339, input.NowStr)
		if err != nil {
			return fmt.Errorf("invalid reference time %q. must be RFC3339: %w", input.NowStr, err)
		}
		cfg.Now = t
	}

	// --- 5. Precision and output validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be 1 or %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// --- 6. Store backend validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend %q. must be sqlite, mysql, postgresql", input.StoreBackend)
	}
	if err := ValidateConnectionString(cfg.StoreBackend, input.StoreConnect); err != nil {
		return err
	}
	cfg.StoreConnect = input.StoreConnect

	return nil
}

// ValidateConnectionString performs basic shape checks on the store
// connection string for the selected backend. SQLite accepts an empty
// string (default file path).
func ValidateConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" || !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql store requires a connection string like user:password@tcp(host:port)/dbname")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql store requires a connection string like host=localhost port=5432 user=postgres dbname=platefit")
		}
	}
	return nil
}

// ReferenceTime returns the configured reference time, falling back to the
// wall clock when none was given.
func (c *Config) ReferenceTime() time.Time {
	if c.Now.IsZero() {
		return time.Now()
	}
	return c.Now
}

// Clone returns a copy of the configuration, used by the MCP handlers to
// apply per-request overrides without touching the base config.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
