package contract

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput mirrors the defaults installed by the CLI layer.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		DatasetPathStr: "season.csv",
		InputFormat:    "auto",
		Conference:     "all",
		Category:       "points",
		Limit:          DefaultResultLimit,
		Precision:      DefaultPrecision,
		Output:         "text",
		Color:          "yes",
		CacheBackend:   string(schema.SQLiteBackend),
		Exponent:       DefaultExponent,
		TopN:           DefaultTopN,
		HomeAdvantage:  DefaultHomeAdvantage,
		ProbFloor:      DefaultProbFloor,
		ProbCeiling:    DefaultProbCeiling,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(input *ConfigRawInput) {},
			expectError: false,
		},
		{
			name: "invalid conference",
			mutate: func(input *ConfigRawInput) {
				input.Conference = "central"
			},
			expectError: true,
		},
		{
			name: "invalid category",
			mutate: func(input *ConfigRawInput) {
				input.Category = "blocks"
			},
			expectError: true,
		},
		{
			name: "invalid limit (zero)",
			mutate: func(input *ConfigRawInput) {
				input.Limit = 0
			},
			expectError: true,
		},
		{
			name: "invalid limit (too large)",
			mutate: func(input *ConfigRawInput) {
				input.Limit = MaxResultLimit + 1
			},
			expectError: true,
		},
		{
			name: "invalid precision (zero)",
			mutate: func(input *ConfigRawInput) {
				input.Precision = 0
			},
			expectError: true,
		},
		{
			name: "invalid precision (too high)",
			mutate: func(input *ConfigRawInput) {
				input.Precision = 3
			},
			expectError: true,
		},
		{
			name: "invalid output format",
			mutate: func(input *ConfigRawInput) {
				input.Output = "invalid_format"
			},
			expectError: true,
		},
		{
			name: "invalid color flag",
			mutate: func(input *ConfigRawInput) {
				input.Color = "maybe"
			},
			expectError: true,
		},
		{
			name: "invalid exponent (zero)",
			mutate: func(input *ConfigRawInput) {
				input.Exponent = 0
			},
			expectError: true,
		},
		{
			name: "invalid exponent (negative)",
			mutate: func(input *ConfigRawInput) {
				input.Exponent = -14
			},
			expectError: true,
		},
		{
			name: "invalid top-n",
			mutate: func(input *ConfigRawInput) {
				input.TopN = 0
			},
			expectError: true,
		},
		{
			name: "clamp floor above ceiling",
			mutate: func(input *ConfigRawInput) {
				input.ProbFloor = 96
				input.ProbCeiling = 95
			},
			expectError: true,
		},
		{
			name: "clamp ceiling above 100",
			mutate: func(input *ConfigRawInput) {
				input.ProbCeiling = 101
			},
			expectError: true,
		},
		{
			name: "clamp floor negative",
			mutate: func(input *ConfigRawInput) {
				input.ProbFloor = -1
			},
			expectError: true,
		},
		{
			name: "config file matchup override",
			mutate: func(input *ConfigRawInput) {
				adv := 3.0
				input.Matchup.HomeAdvantage = &adv
			},
			expectError: false,
		},
		{
			name: "config file override out of bounds",
			mutate: func(input *ConfigRawInput) {
				ceiling := 120.0
				input.Matchup.ProbCeiling = &ceiling
			},
			expectError: true,
		},
		{
			name: "invalid cache backend",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = "invalid_backend"
			},
			expectError: true,
		},
		{
			name: "mysql backend without connection string",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = string(schema.MySQLBackend)
			},
			expectError: true,
		},
		{
			name: "postgresql backend without connection string",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = string(schema.PostgreSQLBackend)
			},
			expectError: true,
		},
		{
			name: "mysql backend with connection string",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = string(schema.MySQLBackend)
				input.CacheDBConnect = "user:pass@tcp(localhost:3306)/courtside"
			},
			expectError: false,
		},
		{
			name: "postgresql backend with connection string",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = string(schema.PostgreSQLBackend)
				input.CacheDBConnect = "host=localhost port=5432 dbname=courtside"
			},
			expectError: false,
		},
		{
			name: "none backend",
			mutate: func(input *ConfigRawInput) {
				input.CacheBackend = string(schema.NoneBackend)
			},
			expectError: false,
		},
		{
			name: "snapshot backend valid",
			mutate: func(input *ConfigRawInput) {
				input.SnapshotBackend = string(schema.SQLiteBackend)
			},
			expectError: false,
		},
		{
			name: "snapshot backend invalid",
			mutate: func(input *ConfigRawInput) {
				input.SnapshotBackend = "invalid_backend"
			},
			expectError: true,
		},
		{
			name: "snapshot and cache sharing a sqlite file",
			mutate: func(input *ConfigRawInput) {
				input.CacheDBConnect = "/tmp/shared.db"
				input.SnapshotBackend = string(schema.SQLiteBackend)
				input.SnapshotDBConnect = "/tmp/shared.db"
			},
			expectError: true,
		},
		{
			name: "invalid input format",
			mutate: func(input *ConfigRawInput) {
				input.InputFormat = "xlsx"
			},
			expectError: true,
		},
		{
			name: "unknown extension with auto format",
			mutate: func(input *ConfigRawInput) {
				input.DatasetPathStr = "season.xlsx"
			},
			expectError: true,
		},
		{
			name: "explicit format overrides extension",
			mutate: func(input *ConfigRawInput) {
				input.DatasetPathStr = "season.dat"
				input.InputFormat = "csv"
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)

			if tt.expectError {
				assert.Error(t, err, "contract.ProcessAndValidate should return an error for %s", tt.name)
			} else {
				assert.NoError(t, err, "contract.ProcessAndValidate should not return an error for %s", tt.name)
				// Basic validation that config was populated
				assert.Equal(t, input.Limit, cfg.ResultLimit)
				assert.True(t, filepath.IsAbs(cfg.DatasetPath))
			}
		})
	}
}

func TestProcessAndValidateFormatInference(t *testing.T) {
	tests := []struct {
		name     string
		dataset  string
		expected schema.InputFormat
	}{
		{"csv extension", "season.csv", schema.CSVFormat},
		{"parquet extension", "season.parquet", schema.ParquetFormat},
		{"db extension", "season.db", schema.SQLiteFormat},
		{"sqlite extension", "season.sqlite", schema.SQLiteFormat},
		{"sqlite3 extension", "season.sqlite3", schema.SQLiteFormat},
		{"uppercase extension", "SEASON.CSV", schema.CSVFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			input.DatasetPathStr = tt.dataset

			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, input))
			assert.Equal(t, tt.expected, cfg.InputFormat)
			assert.True(t, strings.HasSuffix(cfg.DatasetPath, filepath.Base(tt.dataset)))
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Exponent: DefaultExponent, HomeTeam: "Denver Nuggets"}
	clone := cfg.Clone()

	clone.HomeTeam = "Boston Celtics"
	assert.Equal(t, "Denver Nuggets", cfg.HomeTeam)
	assert.Equal(t, cfg.Exponent, clone.Exponent)
}
