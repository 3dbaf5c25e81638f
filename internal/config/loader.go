package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDir  = ".sqlprompt"
	configFile = "config"
	configType = "yaml"
	envPrefix  = "SQLPROMPT"
)

// Load reads the configuration from ~/.sqlprompt/config.yaml.
// Returns the defaults if the file does not exist.
func Load() (*Config, error) {
	dir, err := configDirPath()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.yaml from dir, applying SQLPROMPT_* environment
// overrides (SQLPROMPT_CLIENT_HOST, SQLPROMPT_PREFERENCES_LOG_LEVEL, ...).
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configFile)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that environment overrides are seen
	// by Unmarshal even without a config file.
	v.SetDefault("client.host", "")
	v.SetDefault("client.user", "")
	v.SetDefault("client.port", 0)
	v.SetDefault("client.database", "")
	v.SetDefault("preferences.history_file", filepath.Join(dir, "history"))
	v.SetDefault("preferences.log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
