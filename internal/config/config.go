package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultDeckKey is written to a fresh config file
const DefaultDeckKey = "lancashire"

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"`
	AssetHost   string `toml:"asset_host"` // Prefixed to image URLs when set, e.g. https://cdn.example.com
}

// ImageURL prefixes an image path with the configured asset host
func (c *Config) ImageURL(path string) string {
	if c.AssetHost == "" {
		return path
	}
	return strings.TrimSuffix(c.AssetHost, "/") + path
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file.
// BRASSDECK_CONFIG takes precedence over the XDG location.
func GetConfigFilePath() string {
	if path := os.Getenv("BRASSDECK_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "brassdeck", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if config.DefaultDeck == "" {
		config.DefaultDeck = DefaultDeckKey
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		DefaultDeck: DefaultDeckKey,
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDefaultDeck returns the default deck key from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckKey string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckKey

	return writeConfig(config)
}
