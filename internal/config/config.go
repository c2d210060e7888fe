package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	DatabasePath string     `toml:"database_path"`
	SeedBinders  int64      `toml:"seed_binders"`
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	GridColumns int  `toml:"grid_columns"`
	ShowFooter  bool `toml:"show_footer"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config dir.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "songbinder")
	os.MkdirAll(appDir, 0755)

	return &service{filePath: filepath.Join(appDir, "config.toml")}
}

// Load loads the configuration, writing defaults back on first run.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the default path.
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Zero values from sparse files get defaults back.
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultConfig().DatabasePath
	}
	if cfg.SeedBinders <= 0 {
		cfg.SeedBinders = DefaultConfig().SeedBinders
	}
	if cfg.UISettings.GridColumns <= 0 {
		cfg.UISettings.GridColumns = DefaultConfig().UISettings.GridColumns
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dataDir, err := os.UserConfigDir()
	if err != nil {
		dataDir = "."
	}

	return &Config{
		Version:      1,
		DatabasePath: filepath.Join(dataDir, "songbinder", "songbinder.db"),
		SeedBinders:  20,
		UISettings: UISettings{
			GridColumns: 4,
			ShowFooter:  true,
		},
	}
}
