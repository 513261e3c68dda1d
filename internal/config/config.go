package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside the pocketbook home dir.
const FileName = "pocketbook.yaml"

// Config represents the top-level pocketbook.yaml configuration.
type Config struct {
	Vault    VaultConfig    `yaml:"vault"`
	Export   ExportConfig   `yaml:"export"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// VaultConfig locates the key-value vault on disk.
type VaultConfig struct {
	Dir string `yaml:"dir"`
}

// ExportConfig controls CSV export output.
type ExportConfig struct {
	Dir string `yaml:"dir"`
	// ShareCommand is run with the exported file path as its argument,
	// e.g. "xdg-open". Empty means no share capability: exports fall back
	// to a preview.
	ShareCommand string `yaml:"share_command,omitempty"`
}

// DefaultsConfig holds values prefilled into new records.
type DefaultsConfig struct {
	Currency string `yaml:"currency"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a pocketbook.yaml file from disk.
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

// Default returns a Config rooted at the given home directory.
func Default(home string) *Config {
	return &Config{
		Vault:    VaultConfig{Dir: filepath.Join(home, "vault")},
		Export:   ExportConfig{Dir: filepath.Join(home, "exports")},
		Defaults: DefaultsConfig{Currency: "INR"},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Home returns the pocketbook home directory: $POCKETBOOK_HOME if set,
// otherwise ~/.pocketbook.
func Home() (string, error) {
	if dir := os.Getenv("POCKETBOOK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".pocketbook"), nil
}
