package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "camper", "config.yml")
}

// Load reads the config from disk (or env). An empty path falls back to the
// CAMPER_CONFIG environment variable, then to DefaultPath. A missing file is
// not an error — the configure command creates it.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("CAMPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("CAMPER_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// The identity cookie can live in the environment instead of the file,
	// for users who would rather not keep a session credential on disk.
	if identity := os.Getenv("CAMPER_IDENTITY"); identity != "" {
		cfg.Identity = identity
	}

	cfg.Library = ExpandHome(cfg.Library)

	return &cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// An empty path falls back the same way Load does.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = os.Getenv("CAMPER_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file %q: %w", path, err)
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
