package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// Sidebar defaults, in terminal cells
const (
	DefaultWidth             = 28
	DefaultMinWidth          = 20
	DefaultMaxWidth          = 50
	DefaultCollapsedWidth    = 4
	DefaultRowHeight         = 3
	DefaultAutoExpandDelayMs = 500
	DefaultResizeStep        = 1
	DefaultResizeStepLarge   = 5
	DefaultStatusTimeFormat  = "%H:%M"
	DefaultTheme             = "tokyo-night"
)

// SidebarConfig is the [sidebar] table
type SidebarConfig struct {
	Position          string `toml:"position"`
	Width             int    `toml:"width"`
	MinWidth          int    `toml:"min_width"`
	MaxWidth          int    `toml:"max_width"`
	CollapsedWidth    int    `toml:"collapsed_width"`
	Collapsed         bool   `toml:"collapsed"`
	RowHeight         int    `toml:"row_height"`
	AutoExpandDelayMs int    `toml:"auto_expand_delay_ms"`
	SearchPlaceholder string `toml:"search_placeholder"`
	ResizeStep        int    `toml:"resize_step"`
	ResizeStepLarge   int    `toml:"resize_step_large"`
}

// Config holds application configuration
type Config struct {
	Theme            string            `toml:"theme"`
	StatusTimeFormat string            `toml:"status_time_format"`
	Sidebar          SidebarConfig     `toml:"sidebar"`
	Settings         map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
	path            string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		cfg := defaultConfig()
		cfg.path = filePath
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.path = filePath
	return &config, nil
}

// applyDefaults fills in every value left out of the file
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.StatusTimeFormat == "" {
		c.StatusTimeFormat = DefaultStatusTimeFormat
	}

	s := &c.Sidebar
	if model.ParseSidebarPosition(s.Position) != model.SidebarPosition(s.Position) {
		if s.Position != "" {
			log.Printf("Unknown sidebar position %q, using left", s.Position)
		}
		s.Position = string(model.PositionLeft)
	}
	if s.MinWidth <= 0 {
		s.MinWidth = DefaultMinWidth
	}
	if s.MaxWidth <= 0 {
		s.MaxWidth = DefaultMaxWidth
	}
	if s.MaxWidth < s.MinWidth {
		s.MaxWidth = s.MinWidth
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	s.Width = min(max(s.Width, s.MinWidth), s.MaxWidth)
	if s.CollapsedWidth <= 0 {
		s.CollapsedWidth = DefaultCollapsedWidth
	}
	if s.RowHeight <= 0 {
		s.RowHeight = DefaultRowHeight
	}
	if s.AutoExpandDelayMs <= 0 {
		s.AutoExpandDelayMs = DefaultAutoExpandDelayMs
	}
	if s.ResizeStep <= 0 {
		s.ResizeStep = DefaultResizeStep
	}
	if s.ResizeStepLarge <= 0 {
		s.ResizeStepLarge = DefaultResizeStepLarge
	}

	// Initialize persisted settings if not present
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	c.sessionSettings = make(map[string]string)
}

// AutoExpandDelay returns the auto-expand delay as a duration
func (c *Config) AutoExpandDelay() time.Duration {
	return time.Duration(c.Sidebar.AutoExpandDelayMs) * time.Millisecond
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "tui-sidebar"), nil
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	if val, ok := c.sessionSettings[key]; ok {
		return val
	}
	if val, ok := c.Settings[key]; ok {
		return val
	}
	return ""
}

// GetAll returns all configuration values (both persisted and session)
// Session settings override persisted settings with the same key
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string, len(c.Settings)+len(c.sessionSettings))
	for k, v := range c.Settings {
		result[k] = v
	}
	for k, v := range c.sessionSettings {
		result[k] = v
	}
	return result
}

// Save persists the configuration to the TOML file it was loaded from, or
// to the standard location. Session settings are not written.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
