package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable configuration file.
type Config struct {
	InitialMinutes int           `yaml:"initial_minutes"`
	Theme          string        `yaml:"theme"`
	Bell           bool          `yaml:"bell"`
	History        HistoryConfig `yaml:"history"`
	LogFile        string        `yaml:"log_file"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InitialMinutes: 0,
		Theme:          "default",
		Bell:           true,
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Path resolves the config file location: the explicit argument, then
// $SSTIMER_CONFIG, then the per-user config directory.
func Path(explicit, configDir string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		return p
	}
	return filepath.Join(configDir, ConfigFileName)
}

// Load reads the YAML file at path. A missing file yields Default().
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if c.InitialMinutes < 0 {
		return fmt.Errorf("initial_minutes must not be negative, got %d", c.InitialMinutes)
	}
	return nil
}
