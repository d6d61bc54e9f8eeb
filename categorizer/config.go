package categorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"
)

const (
	defaultConfigFile = "config.json"
	envPrefix         = "POLICYMATCH"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	var defaults Config
	defaults.ApplyDefaults()
	v.SetDefault("topK", defaults.TopK)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("lemmaCacheSize", defaults.LemmaCacheSize)
	v.SetDefault("referencePath", "")
	v.SetDefault("motionsPath", "")
	v.SetDefault("codesPath", "")
	v.SetDefault("outputPath", "")
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("columns.id", defaults.Columns.ID)
	v.SetDefault("columns.code", defaults.Columns.Code)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	return v
}

// LoadConfig loads configuration from the given path or the default
// config.json, then applies POLICYMATCH_* environment overrides. A missing
// default file yields the defaults.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// SaveConfig persists configuration to disk as YAML or JSON depending on the extension.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ApplyDefaults()
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
