package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"essaydesk/internal/attachments"
	"essaydesk/internal/eventbus"
)

// FileName is the per-directory config file
const FileName = ".essaydesk.toml"

// ErrNotFound is returned when an explicit config path does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Uploader UploaderSettings `toml:"uploader"`
	Picker   PickerSettings   `toml:"picker"`
	UI       UISettings       `toml:"ui"`
	Log      LogSettings      `toml:"log"`
}

// UploaderSettings mirrors the uploader widget options
type UploaderSettings struct {
	Multiple    bool     `toml:"multiple"`
	FileTypes   []string `toml:"file_types"`
	MaxFiles    int      `toml:"max_files"`
	Placeholder string   `toml:"placeholder"`
}

// PickerSettings configures the document chooser
type PickerSettings struct {
	StartDir   string `toml:"start_dir"`
	CacheDir   string `toml:"cache_dir"`
	ShowHidden bool   `toml:"show_hidden"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme    string `toml:"theme"` // auto, light or dark
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Options converts the uploader settings into selection options
func (u UploaderSettings) Options() attachments.Options {
	return attachments.Options{
		AllowMultiple: u.Multiple,
		AcceptedTypes: u.FileTypes,
		MaxCount:      u.MaxFiles,
		Placeholder:   u.Placeholder,
	}.Normalize()
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service backed by the user config directory
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &service{filePath: filepath.Join(configDir, "essaydesk", "config.toml")}
}

// NewServiceForPath creates a config service bound to a specific file
func NewServiceForPath(path string) Service {
	return &service{filePath: path}
}

// WithBus attaches an event bus so loads and saves are published
func WithBus(svc Service, bus eventbus.EventBus) Service {
	if s, ok := svc.(*service); ok {
		s.bus = bus
	}
	return svc
}

// Path returns the file the service loads from and saves to
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		s.publish(eventbus.ConfigLoadedEvent{})
		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}
	s.publish(eventbus.ConfigLoadedEvent{Path: s.filePath})
	return cfg, nil
}

// Save saves the configuration to the service's file
func (s *service) Save(cfg *Config) error {
	if err := s.SaveToPath(cfg, s.filePath); err != nil {
		return err
	}
	s.publish(eventbus.ConfigSavedEvent{Path: s.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (s *service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Resolve picks the config file for a working directory: an explicit path
// wins, then <dir>/.essaydesk.toml, then the user config file.
func Resolve(explicit, dir string) Service {
	if explicit != "" {
		return NewServiceForPath(explicit)
	}
	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return NewServiceForPath(local)
	}
	return NewService()
}

// applyDefaults repairs values a hand-edited file may have left invalid
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Uploader.MaxFiles < 1 {
		c.Uploader.MaxFiles = def.Uploader.MaxFiles
	}
	if len(c.Uploader.FileTypes) == 0 {
		c.Uploader.FileTypes = def.Uploader.FileTypes
	}
	if c.Uploader.Placeholder == "" {
		c.Uploader.Placeholder = def.Uploader.Placeholder
	}
	switch c.UI.Theme {
	case "auto", "light", "dark":
	default:
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.Title == "" {
		c.UI.Title = def.UI.Title
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := attachments.DefaultOptions()
	return &Config{
		Version: 1,
		Uploader: UploaderSettings{
			Multiple:    opts.AllowMultiple,
			FileTypes:   opts.AcceptedTypes,
			MaxFiles:    opts.MaxCount,
			Placeholder: opts.Placeholder,
		},
		UI: UISettings{
			Theme:    "auto",
			Title:    "Assignment",
			Subtitle: "Write, share or upload your assignment",
		},
		Log: LogSettings{
			File:  "essaydesk.log",
			Level: "info",
		},
	}
}
