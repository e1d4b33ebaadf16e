package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultScheduleReport is the well-known name of the area-schedule report
// inside the model snapshot.
const DefaultScheduleReport = "Area Schedule"

// Config holds the full service configuration.
type Config struct {
	// Remote tabular store (Airtable-style REST API)
	Remote struct {
		BaseURL string `yaml:"base_url"` // e.g. https://api.airtable.com/v0/appXXXX
		Token   string `yaml:"token"`    // bearer token, never logged
		Table   string `yaml:"table"`    // table name, e.g. "Plans"
	} `yaml:"remote"`

	// Model snapshot inputs
	Model struct {
		// ScheduleReport is the report name looked up inside the snapshot.
		ScheduleReport string `yaml:"schedule_report"`
		// ScheduleWorkbook optionally points at an xlsx export of the
		// area schedule; when set it takes precedence over the snapshot's
		// embedded schedules.
		ScheduleWorkbook string `yaml:"schedule_workbook"`
	} `yaml:"model"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment-variable overrides (highest precedence).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Defaults
	cfg.Remote.Table = "Plans"
	cfg.Model.ScheduleReport = DefaultScheduleReport
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	// Optional YAML file
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Environment overrides
	cfg.Remote.BaseURL = getEnv("REMOTE_BASE_URL", cfg.Remote.BaseURL)
	cfg.Remote.Token = getEnv("REMOTE_API_TOKEN", cfg.Remote.Token)
	cfg.Remote.Table = getEnv("REMOTE_TABLE", cfg.Remote.Table)
	cfg.Model.ScheduleReport = getEnv("SCHEDULE_REPORT", cfg.Model.ScheduleReport)
	cfg.Model.ScheduleWorkbook = getEnv("SCHEDULE_WORKBOOK", cfg.Model.ScheduleWorkbook)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

// ValidateRemote checks the settings required before any network call.
// Extraction-only runs never need these.
func (c *Config) ValidateRemote() error {
	if c.Remote.BaseURL == "" {
		return fmt.Errorf("remote base URL is not configured (REMOTE_BASE_URL)")
	}
	if c.Remote.Token == "" {
		return fmt.Errorf("remote API token is not configured (REMOTE_API_TOKEN)")
	}
	if c.Remote.Table == "" {
		return fmt.Errorf("remote table is not configured (REMOTE_TABLE)")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
