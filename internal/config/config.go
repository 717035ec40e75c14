package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saltyorg/movielist/internal/database"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "movielist.yaml"

// Config is the movielist configuration file layout.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Console  ConsoleConfig  `yaml:"console"`
}

// DatabaseConfig selects and configures the SQLite file.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	ForeignKeys bool   `yaml:"foreign_keys"`
}

// LogConfig controls log level and the rotating log file.
// An empty File places the log next to the database.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ConsoleConfig controls the interactive front-end.
type ConsoleConfig struct {
	ClearScreen bool `yaml:"clear_screen"`
	PauseMS     int  `yaml:"pause_ms"`
}

// Pause returns the configured pause as a duration.
func (c ConsoleConfig) Pause() time.Duration {
	return time.Duration(c.PauseMS) * time.Millisecond
}

var validLevels = map[string]struct{}{
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        database.DefaultPath,
			ForeignKeys: database.DefaultOptions().ForeignKeys,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Console: ConsoleConfig{
			ClearScreen: true,
			PauseMS:     1000,
		},
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Database.Path) == "" {
		return fmt.Errorf("database path is required")
	}
	if _, ok := validLevels[cfg.Log.Level]; !ok {
		return fmt.Errorf("unsupported log level: %q", cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log max_size_mb must be positive")
	}
	if cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log max_backups must not be negative")
	}
	if cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log max_age_days must not be negative")
	}
	if cfg.Console.PauseMS < 0 {
		return fmt.Errorf("console pause_ms must not be negative")
	}
	return nil
}
