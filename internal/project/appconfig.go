package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/GridCut/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.gridcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gridcut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	// Start from defaults so fields missing from the file keep sensible values
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// EnsureAppConfig loads the config at path, writing the defaults there first
// if the file does not exist yet.
func EnsureAppConfig(path string) (model.AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
			return model.DefaultAppConfig(), err
		}
	}
	return LoadAppConfig(path)
}
