package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gasplit tool.
type Config struct {
	Split    SplitConfig    `yaml:"split"`
	Expenses ExpensesConfig `yaml:"expenses"`
	History  HistoryConfig  `yaml:"history"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SplitConfig holds source-splitting configuration.
type SplitConfig struct {
	Source    string `yaml:"source"`     // monolithic source file
	OutputDir string `yaml:"output_dir"` // directory for emitted modules
	Catalog   string `yaml:"catalog"`    // optional catalog YAML; built-in catalog when empty
}

// ExpensesConfig holds statement aggregation configuration.
type ExpensesConfig struct {
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
	MatchType  string   `yaml:"match_type"`  // e.g. "CARD_PAYMENT"
	MatchState string   `yaml:"match_state"` // e.g. "COMPLETED"
}

// HistoryConfig holds run-history configuration.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			Source:    "gs_torx_main.gs",
			OutputDir: "src",
		},
		Expenses: ExpensesConfig{
			Includes:   []string{"exports/**/*.csv", "*.csv"},
			Excludes:   []string{"**/node_modules/**", "**/.git/**"},
			MatchType:  "CARD_PAYMENT",
			MatchState: "COMPLETED",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for gasplit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "gasplit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".gasplit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// HistoryDBPath returns the path to the run-history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".gasplit", "history.db")
}

// EnsureStateDir ensures the .gasplit directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".gasplit"), 0755)
}
