package library

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in configuration.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultConfigFile is read when no explicit config path is given.
const DefaultConfigFile = "library.yaml"

// Config controls where the catalog is persisted and the default loan period.
type Config struct {
	DataFile string `yaml:"data_file"`
	LoanDays int    `yaml:"loan_days"`
	Backend  string `yaml:"backend"`
}

// LoadConfig layers the configuration: built-in defaults, then the YAML file
// at path (skipped when absent; DefaultConfigFile when path is blank), then
// LIBRARY_DATA_FILE, LIBRARY_LOAN_DAYS and LIBRARY_BACKEND from the
// environment.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		DataFile: DefaultDataFile,
		LoanDays: DefaultLoanDays,
		Backend:  BackendJSON,
	}

	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults stand.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %v: %w", path, err, ErrInvalidArgument)
		}
	}

	if v := os.Getenv("LIBRARY_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("LIBRARY_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("LIBRARY_LOAN_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("LIBRARY_LOAN_DAYS %q is not a number: %w", v, ErrInvalidArgument)
		}
		cfg.LoanDays = n
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.LoanDays < 1 {
		return Config{}, fmt.Errorf("loan_days must be at least 1, got %d: %w", cfg.LoanDays, ErrInvalidArgument)
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown backend %q: %w", cfg.Backend, ErrInvalidArgument)
	}
	return cfg, nil
}

// OpenStore constructs the snapshot store the configuration names.
func (c Config) OpenStore() (Store, error) {
	switch c.Backend {
	case BackendSQLite:
		return NewSQLiteStore(c.DataFile)
	default:
		return NewJSONStore(c.DataFile), nil
	}
}
