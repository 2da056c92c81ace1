package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level wydatki.yaml configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates and describes the statement file.
type InputConfig struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"` // preferred encoding, tried first
	Format   string `yaml:"format"`   // statement format, e.g. "ipko"
}

// OutputConfig sets the export destinations.
type OutputConfig struct {
	Cleaned    string `yaml:"cleaned"`
	Unassigned string `yaml:"unassigned"`
}

// LoggingConfig controls log verbosity and the optional log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Load reads a wydatki.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:     "data/statement.csv",
			Encoding: "cp1250",
			Format:   "ipko",
		},
		Output: OutputConfig{
			Cleaned:    "data/processed_transactions.csv",
			Unassigned: "data/unassigned_transactions.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "wydatki.log",
		},
	}
}
