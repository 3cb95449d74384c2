package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/qfg-dev/qfg/pkg/models"
)

// Environment variable prefix for tool settings.
const envPrefix = "QFG"

// Setting keys, shared by the config file, QFG_* variables and overrides.
const (
	KeyLogMode          = "log_mode"
	KeyLogLevel         = "log_level"
	KeyDefaultBaseURL   = "default_base_url"
	KeyDefaultDirectory = "default_directory"
)

// DefaultBaseURL is suggested when the user gives no base URL.
const DefaultBaseURL = "https://www.saucedemo.com"

// Settings configure qfg itself, as opposed to the generated project.
type Settings struct {
	LogMode          models.LogMode `mapstructure:"log_mode"`
	LogLevel         string         `mapstructure:"log_level"`
	DefaultBaseURL   string         `mapstructure:"default_base_url"`
	DefaultDirectory string         `mapstructure:"default_directory"`
}

// DefaultSettingsFile returns $XDG_CONFIG_HOME/qfg/config.yaml, or the
// platform equivalent.
func DefaultSettingsFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "qfg", "config.yaml"), nil
}

// LoadSettings resolves tool settings. Precedence from highest to lowest:
// overrides (explicit flags), QFG_* environment variables, the settings
// file, defaults. A missing settings file is not an error.
func LoadSettings(path string, overrides map[string]any) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogMode, string(models.LogModeLocal))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDefaultBaseURL, DefaultBaseURL)
	v.SetDefault(KeyDefaultDirectory, ".")

	if path == "" {
		if p, err := DefaultSettingsFile(); err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
			}
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if !s.LogMode.IsValid() {
		return Settings{}, invalid(KeyLogMode, "must be one of: json, local", string(s.LogMode))
	}
	return s, nil
}
