package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides. Keys map by
// joining path segments with underscores: SPOOL_SERVER_PORT overrides
// server.port.
const EnvPrefix = "SPOOL"

// Loader handles configuration loading and saving
type Loader struct {
	path string
}

// NewLoader creates a new config loader for the given config file path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// ConfigPath returns the full path to the config file
func (l *Loader) ConfigPath() string {
	return l.path
}

// Exists returns true if a config file exists at the expected location
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// newViper builds a viper instance with every key defaulted and bound to the
// SPOOL_* environment, so partial config files and env-only overrides both
// resolve against the same baseline.
func newViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("platform.hard_limit", def.Platform.HardLimit)
	v.SetDefault("platform.optimal_min", def.Platform.OptimalMin)
	v.SetDefault("platform.optimal_max", def.Platform.OptimalMax)
	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.log_level", def.Server.LogLevel)
	v.SetDefault("server.request_timeout_ms", def.Server.RequestTimeoutMs)
	v.SetDefault("server.max_body_bytes", def.Server.MaxBodyBytes)
	v.SetDefault("defaults.tone", def.Defaults.Tone)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration from disk, layered over the defaults and the
// environment. If the config file doesn't exist, it returns an error.
func (l *Loader) Load() (*Config, error) {
	if !l.Exists() {
		return nil, fmt.Errorf("config file not found at %s", l.path)
	}

	v := newViper()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration from disk, or resolves defaults plus
// environment overrides when no file is present.
func (l *Loader) LoadOrDefault() (*Config, error) {
	if !l.Exists() {
		cfg := &Config{}
		if err := newViper().Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		return cfg, nil
	}
	return l.Load()
}

// Save writes the configuration to disk
// It creates the parent directory if it doesn't exist
func (l *Loader) Save(cfg *Config) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("platform", cfg.Platform)
	v.Set("server", cfg.Server)
	v.Set("defaults", cfg.Defaults)

	if err := v.WriteConfigAs(l.path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init writes a default config file at the loader's path
// It refuses to overwrite a config that already exists
func (l *Loader) Init() (*Config, error) {
	if l.Exists() {
		return nil, fmt.Errorf("config already exists at %s", l.path)
	}

	cfg := Default()
	if err := l.Save(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
