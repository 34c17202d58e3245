package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hoopworks/courtside/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 30 // one full league table
	MaxResultLimit     = 100
	DefaultPrecision   = 1
	DefaultDataset     = "season.csv"
)

// Analytics defaults. The exponent and home-court bonus are domain-calibrated
// constants, configurable but not derived from the data.
const (
	DefaultExponent      = 14.0
	DefaultHomeAdvantage = 6.5
	DefaultProbFloor     = 5.0
	DefaultProbCeiling   = 95.0
	DefaultTopN          = 5
)

// MatchupRawInput holds matchup heuristic overrides from the YAML config file.
// Use float64 pointers so absent fields fall back to defaults.
type MatchupRawInput struct {
	HomeAdvantage *float64 `mapstructure:"home_advantage"`
	ProbFloor     *float64 `mapstructure:"prob_floor"`
	ProbCeiling   *float64 `mapstructure:"prob_ceiling"`
}

// Config holds the runtime configuration for the analytics.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	InputFormat schema.InputFormat
	Conference  schema.Conference
	Category    schema.StatCategory
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Exponent      float64 // Pythagorean exponent
	HomeAdvantage float64 // flat home-court bonus in percentage points
	ProbFloor     float64 // lower clamp for matchup probabilities
	ProbCeiling   float64 // upper clamp for matchup probabilities
	TopN          int     // size of the lucky/unlucky extremes

	HomeTeam string
	AwayTeam string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	InputFormat       string `mapstructure:"input-format"`
	Conference        string `mapstructure:"conference"`
	Limit             int    `mapstructure:"limit"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	CacheBackend      string `mapstructure:"cache-backend"`
	CacheDBConnect    string `mapstructure:"cache-db-connect"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`

	// --- Fields from luckCmd.Flags() ---
	Exponent float64 `mapstructure:"exponent"`
	TopN     int     `mapstructure:"top-n"`

	// --- Fields from matchupCmd.Flags() ---
	HomeTeam      string  `mapstructure:"home"`
	AwayTeam      string  `mapstructure:"away"`
	HomeAdvantage float64 `mapstructure:"home-advantage"`
	ProbFloor     float64 `mapstructure:"prob-floor"`
	ProbCeiling   float64 `mapstructure:"prob-ceiling"`

	// --- Fields from leadersCmd.Flags() ---
	Category string `mapstructure:"category"`

	// --- Matchup overrides from config file ---
	Matchup MatchupRawInput `mapstructure:"matchup"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAnalyticsParams(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := resolveDatasetPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-analytics fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.HomeTeam = strings.TrimSpace(input.HomeTeam)
	cfg.AwayTeam = strings.TrimSpace(input.AwayTeam)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 3. Conference Validation ---
	cfg.Conference = schema.Conference(strings.ToLower(input.Conference))
	if _, ok := schema.ValidConferences[cfg.Conference]; !ok {
		return fmt.Errorf("invalid conference '%s'. must be east, west, all", input.Conference)
	}

	// --- 4. Category Validation ---
	cfg.Category = schema.StatCategory(strings.ToLower(input.Category))
	if _, ok := schema.ValidStatCategories[cfg.Category]; !ok {
		return fmt.Errorf("invalid category '%s'. must be points, assists, rebounds, threes, steals", input.Category)
	}

	return nil
}

// processAnalyticsParams validates the Pythagorean and matchup parameters.
// Flag/env values are applied first, then overridden by the matchup block of
// the config file when present.
func processAnalyticsParams(cfg *Config, input *ConfigRawInput) error {
	cfg.Exponent = input.Exponent
	cfg.HomeAdvantage = input.HomeAdvantage
	cfg.ProbFloor = input.ProbFloor
	cfg.ProbCeiling = input.ProbCeiling
	cfg.TopN = input.TopN

	if input.Matchup.HomeAdvantage != nil {
		cfg.HomeAdvantage = *input.Matchup.HomeAdvantage
	}
	if input.Matchup.ProbFloor != nil {
		cfg.ProbFloor = *input.Matchup.ProbFloor
	}
	if input.Matchup.ProbCeiling != nil {
		cfg.ProbCeiling = *input.Matchup.ProbCeiling
	}

	if cfg.Exponent <= 0 {
		return fmt.Errorf("exponent must be greater than 0 (received %g)", cfg.Exponent)
	}
	if cfg.ProbFloor < 0 || cfg.ProbCeiling > 100 || cfg.ProbFloor >= cfg.ProbCeiling {
		return fmt.Errorf("probability clamp bounds must satisfy 0 <= floor < ceiling <= 100 (received %g and %g)", cfg.ProbFloor, cfg.ProbCeiling)
	}
	if cfg.TopN < 1 {
		return fmt.Errorf("top-n must be at least 1 (received %d)", cfg.TopN)
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and snapshot backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Snapshot Backend Validation ---
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if cfg.SnapshotBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.SnapshotBackend]; !ok {
			return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
		}
		cfg.SnapshotDBConnect = input.SnapshotDBConnect
		if err := ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect); err != nil {
			return err
		}

		// Cache and snapshot data must live in different databases
		if cfg.CacheBackend == cfg.SnapshotBackend && cfg.CacheBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			snapshotDBPath := cfg.SnapshotDBConnect
			if snapshotDBPath == "" {
				snapshotDBPath = GetSnapshotDBFilePath()
			}
			if cacheDBPath == snapshotDBPath {
				return fmt.Errorf("cache and snapshot storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// resolveDatasetPath resolves the dataset path and its input format.
func resolveDatasetPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.DatasetPathStr)
	if path == "" {
		path = DefaultDataset
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	cfg.DatasetPath = filepath.Clean(absPath)

	format := schema.InputFormat(strings.ToLower(input.InputFormat))
	if _, ok := schema.ValidInputFormats[format]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be auto, csv, parquet, sqlite", input.InputFormat)
	}
	if format == schema.AutoFormat {
		format, err = FormatForPath(cfg.DatasetPath)
		if err != nil {
			return err
		}
	}
	cfg.InputFormat = format

	return nil
}

// FormatForPath infers the dataset format from a file extension.
func FormatForPath(path string) (schema.InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return schema.CSVFormat, nil
	case ".parquet":
		return schema.ParquetFormat, nil
	case ".db", ".sqlite", ".sqlite3":
		return schema.SQLiteFormat, nil
	default:
		return "", fmt.Errorf("cannot infer dataset format from %q. Use --input-format to specify csv, parquet or sqlite", filepath.Base(path))
	}
}
