package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/anagram/internal/api"
	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/pipeline"
)

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// Config is the TOML config file. Command-line flags override its values.
type Config struct {
	Format     string       `toml:"format"`
	Limit      int          `toml:"limit"`
	MaxLetters int          `toml:"max_letters"`
	NoCache    bool         `toml:"no_cache"`
	Server     ServerConfig `toml:"server"`
}

// ServerConfig holds the settings for 'anagram serve'.
type ServerConfig struct {
	Addr  string `toml:"addr"`
	Redis string `toml:"redis"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Format:     pipeline.DefaultFormat,
		MaxLetters: pipeline.DefaultMaxLetters,
		Server:     ServerConfig{Addr: api.DefaultAddr},
	}
}

// LoadConfig reads the config file at path on top of the defaults.
// A missing file is not an error unless required is set.
func LoadConfig(path string, required bool) (Config, []string, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return cfg, nil, nil
	}
	if err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

// Validate checks the config values.
func (c Config) Validate() error {
	if err := errors.ValidateFormat(c.Format, io.Formats...); err != nil {
		return err
	}
	if err := errors.ValidateLimit(c.Limit); err != nil {
		return err
	}
	if c.MaxLetters < 0 {
		return fmt.Errorf("max_letters must not be negative, got %d", c.MaxLetters)
	}
	return nil
}

// loadConfig loads --config, or the default config file if it exists.
func (c *CLI) loadConfig() error {
	path, required := c.configPath, true
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path, required = filepath.Join(dir, configFile), false
	}

	cfg, unknown, err := LoadConfig(path, required)
	if err != nil {
		return err
	}
	for _, key := range unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "file", path, "format", cfg.Format, "max_letters", cfg.MaxLetters)
	return nil
}
