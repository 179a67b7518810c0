package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSearchDebounceMs is the quiescence window before a segment search fires.
	DefaultSearchDebounceMs = 300
	// DefaultToastSeconds is how long a dismissable toast stays on screen.
	DefaultToastSeconds = 3
)

// Config holds CLI configuration stored at ~/.eligibility/config.
type Config struct {
	APIKey           string `yaml:"api_key" toml:"api_key"`
	ServerURL        string `yaml:"server_url,omitempty" toml:"server_url"`
	Theme            string `yaml:"theme,omitempty" toml:"theme"`
	LogFile          string `yaml:"log_file,omitempty" toml:"log_file"`
	SearchDebounceMs int    `yaml:"search_debounce_ms,omitempty" toml:"search_debounce_ms"`
	ToastSeconds     int    `yaml:"toast_seconds,omitempty" toml:"toast_seconds"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".eligibility", "config")
}

// Load reads and parses the default config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path. Files ending in .toml are parsed as
// TOML, everything else as YAML.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("config missing api_key")
	}

	return &cfg, nil
}

// Save writes the config to the default path with secure permissions.
func (c *Config) Save() error {
	return c.SaveFile(Path())
}

// SaveFile writes the config to path with secure permissions, as TOML when
// the path ends in .toml and YAML otherwise.
func (c *Config) SaveFile(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// SearchDebounce returns the configured debounce window.
func (c *Config) SearchDebounce() time.Duration {
	if c == nil || c.SearchDebounceMs <= 0 {
		return DefaultSearchDebounceMs * time.Millisecond
	}
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}

// ToastDuration returns how long toasts stay visible.
func (c *Config) ToastDuration() time.Duration {
	if c == nil || c.ToastSeconds <= 0 {
		return DefaultToastSeconds * time.Second
	}
	return time.Duration(c.ToastSeconds) * time.Second
}

// ThemeName returns the configured theme, defaulting to dark.
func (c *Config) ThemeName() string {
	if c == nil {
		return "dark"
	}
	switch strings.ToLower(strings.TrimSpace(c.Theme)) {
	case "light":
		return "light"
	case "notty":
		return "notty"
	default:
		return "dark"
	}
}
