package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"scenegrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Scene      SceneSettings     `toml:"scene"`
	Selection  SelectionSettings `toml:"selection"`
	UISettings UISettings        `toml:"ui"`
}

// SceneSettings selects what to load and which camera resolves clicks
type SceneSettings struct {
	Path   string `toml:"path"`   // empty loads the built-in sample scene
	Camera string `toml:"camera"` // camera name used for click resolution
}

// SelectionSettings configures selection behavior
type SelectionSettings struct {
	Modifier string `toml:"modifier"` // multi-select modifier: ctrl, alt or shift
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpBar bool   `toml:"show_help_bar"`
	Highlight   string `toml:"highlight"` // outline color as #rrggbb
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

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create scenegrip config directory
	scenegripDir := filepath.Join(configDir, "scenegrip")
	os.MkdirAll(scenegripDir, 0755)

	return &configService{
		filePath: filepath.Join(scenegripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// normalize fills gaps a hand-edited file may leave
func (c *Config) normalize() {
	if c.Scene.Camera == "" {
		c.Scene.Camera = "main"
	}
	switch c.Selection.Modifier {
	case "ctrl", "alt", "shift":
	default:
		c.Selection.Modifier = "ctrl"
	}
	if c.UISettings.Highlight == "" {
		c.UISettings.Highlight = "#ffffff"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Scene: SceneSettings{
			Path:   "",
			Camera: "main",
		},
		Selection: SelectionSettings{
			Modifier: "ctrl",
		},
		UISettings: UISettings{
			ShowHelpBar: true,
			Highlight:   "#ffffff",
		},
	}
}
