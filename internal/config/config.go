package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"

	"qkart/internal/eventbus"
	"qkart/internal/logging"
)

const (
	DefaultBaseURL  = "http://localhost:8082/api/v1"
	DefaultDebounce = 500 * time.Millisecond
	DefaultTimeout  = 10 * time.Second
	DefaultLogFile  = "qkart.log"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	API        APISettings    `toml:"api"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
	Log        LogSettings    `toml:"log"`
}

// APISettings describes how to reach the storefront backend
type APISettings struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"` // per request
}

// SearchSettings tunes the search pipeline
type SearchSettings struct {
	Debounce Duration `toml:"debounce"` // quiescence window before a query is sent
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHero bool `toml:"show_hero"`
	Columns  int  `toml:"columns"` // 0 picks the column count from the terminal width
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration stored as a string such as "500ms"
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "qkart", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty path
// uses DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.API.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports every problem with the configuration at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.API.BaseURL == "" {
		result = multierror.Append(result, errors.New("api.base_url must not be empty"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil {
		result = multierror.Append(result, fmt.Errorf("api.base_url: %w", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result = multierror.Append(result, fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme))
	} else if u.Host == "" {
		result = multierror.Append(result, errors.New("api.base_url: missing host"))
	}

	if c.API.Timeout <= 0 {
		result = multierror.Append(result, errors.New("api.timeout must be positive"))
	}
	if c.Search.Debounce <= 0 {
		result = multierror.Append(result, errors.New("search.debounce must be positive"))
	}
	if c.UISettings.Columns < 0 {
		result = multierror.Append(result, errors.New("ui.columns must not be negative"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}

	return result.ErrorOrNil()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: DefaultBaseURL,
			Timeout: Duration(DefaultTimeout),
		},
		Search: SearchSettings{
			Debounce: Duration(DefaultDebounce),
		},
		UISettings: UISettings{
			ShowHero: true,
		},
		Log: LogSettings{
			Level: "info",
			File:  DefaultLogFile,
		},
	}
}
