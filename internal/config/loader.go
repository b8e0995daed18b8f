package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name looked up under the XDG config directories.
const DefaultConfigFile = "config.yaml"

// ErrConfigNotFound is returned when an explicitly requested file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Load reads a YAML file over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile resolves the file to load: an explicit path if it exists, otherwise
// livegauge/config.yaml in the XDG config directories. It returns "" when nothing is found.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	path, err := xdg.SearchConfigFile(filepath.Join(AppName, DefaultConfigFile))
	if err != nil {
		return ""
	}
	return path
}

// LoadDefault loads the discovered config file, falling back to defaults when none exists.
// An explicit path that cannot be found is an error.
func LoadDefault(explicit string) (Config, string, error) {
	path := FindConfigFile(explicit)
	if path == "" {
		if explicit != "" {
			return Default(), "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
