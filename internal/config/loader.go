package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

// Environment overrides applied after the settings file is read.
const (
	EnvAppsFile = "KIOSK_APPS_FILE"
	EnvLogLevel = "KIOSK_LOG_LEVEL"
)

// SourceEmbedded is reported by Load when no settings file was found.
const SourceEmbedded = "embedded"

// Load reads the kiosk settings.
// Search order: customPath -> ~/.config/tui-kiosk/kiosk.yaml -> ./configs/kiosk.yaml -> embedded default
//
// Keys missing from the file keep their default values. The second return
// value names the file that was used.
func Load(customPath string) (Settings, string, error) {
	cfg, source, err := loadFile(customPath)
	if err != nil {
		return cfg, source, err
	}
	applyEnv(&cfg)
	return cfg, source, nil
}

func loadFile(customPath string) (Settings, string, error) {
	// Try custom path first
	if customPath != "" {
		path, err := homedir.Expand(customPath)
		if err != nil {
			return DefaultSettings(), customPath, &Error{Path: customPath, Op: "read", Err: err}
		}
		cfg, err := decodeSettingsFile(path)
		return cfg, path, err
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("kiosk.yaml"), filepath.Join("configs", "kiosk.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := decodeSettingsFile(path)
		return cfg, path, err
	}

	// Use embedded default YAML
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultKioskYAML, &cfg); err != nil {
		return DefaultSettings(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decodeSettingsFile decodes path over the defaults, choosing TOML or YAML by
// extension.
func decodeSettingsFile(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &Error{Path: path, Op: "read", Err: err}
	}

	if isTOML(path) {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, &Error{Path: path, Op: "parse", Err: err}
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &Error{Path: path, Op: "parse", Err: err}
	}
	return cfg, nil
}

func applyEnv(cfg *Settings) {
	if v := os.Getenv(EnvAppsFile); v != "" {
		cfg.AppsFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tui-kiosk", filename)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// IsConfigError reports whether err came from this package.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
