package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"scrollwatch/internal/eventbus"
)

// FileName is the config file looked up in the working directory
const FileName = ".scrollwatch.toml"

// Source kinds
const (
	SourceWindow  = "window"  // the whole document scrolls like a browser window
	SourceElement = "element" // the document sits in a scrollable pane
	SourceNone    = "none"    // tracking disabled
)

// Defaults
const (
	DefaultThrottleMs  = 200
	DefaultHistorySize = 256
	DefaultLogFile     = "scrollwatch.log"
)

var (
	// ErrInvalidSource is returned for an unknown source kind
	ErrInvalidSource = errors.New("invalid source")
	// ErrInvalidInterval is returned for a non-positive throttle interval
	ErrInvalidInterval = errors.New("throttle_ms must be positive")
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	Source      string     `toml:"source"`
	ThrottleMs  int        `toml:"throttle_ms"`
	HistorySize int        `toml:"history_size"`
	LogFile     string     `toml:"log_file"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	HideHeaderOnScrollDown bool `toml:"hide_header_on_scroll_down"`
	ShowPosition           bool `toml:"show_position"`
}

// Interval returns the throttle window as a duration
func (c *Config) Interval() time.Duration {
	return time.Duration(c.ThrottleMs) * time.Millisecond
}

// Validate checks the fields the tracker depends on
func (c *Config) Validate() error {
	switch c.Source {
	case SourceWindow, SourceElement, SourceNone:
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidSource, c.Source, SourceWindow, SourceElement, SourceNone)
	}
	if c.ThrottleMs <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, c.ThrottleMs)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path
func NewConfigService(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// Load loads the configuration from the bound path. A missing file yields
// the defaults.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			Source:     cfg.Source,
			ThrottleMs: cfg.ThrottleMs,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the bound path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	// Ensure config directory exists
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
	return &Config{
		Version:     1,
		Source:      SourceWindow,
		ThrottleMs:  DefaultThrottleMs,
		HistorySize: DefaultHistorySize,
		LogFile:     DefaultLogFile,
		UISettings: UISettings{
			HideHeaderOnScrollDown: true,
			ShowPosition:           true,
		},
	}
}
