package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds settings read from ~/.tada/config.yaml and TADA_* env vars.
type Config struct {
	DataFile   string `yaml:"data_file"`
	Theme      string `yaml:"theme"`
	Group      bool   `yaml:"group"`
	LogLevel   string `yaml:"log_level"`
	MaxHistory int    `yaml:"max_history"` // 0 = unbounded
}

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrNegativeHistory = errors.New("max_history must not be negative")
	ErrBadMaxHistory   = errors.New("TADA_MAX_HISTORY is not an integer")
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:    "classic",
		LogLevel: "info",
	}
}

// DefaultPath is ~/.tada/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".tada", "config.yaml"), nil
}

// Load reads path (a missing file means defaults), applies env overrides
// and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TADA_DATA_FILE")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if dbg, err := strconv.ParseBool(os.Getenv("TADA_DEBUG")); err == nil && dbg {
		cfg.LogLevel = "debug"
	}
	if v := strings.TrimSpace(os.Getenv("TADA_MAX_HISTORY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadMaxHistory, v)
		}
		cfg.MaxHistory = n
	}
	return nil
}

// Validate checks theme, log level and history depth.
func (c Config) Validate() error {
	known := false
	for _, t := range Themes {
		if strings.EqualFold(c.Theme, t) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxHistory < 0 {
		return ErrNegativeHistory
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
