package config

import (
	"fmt"
	"time"
)

// Config represents the complete Spool configuration
type Config struct {
	Platform PlatformConfig `yaml:"platform" json:"platform" mapstructure:"platform"`
	Server   ServerConfig   `yaml:"server" json:"server" mapstructure:"server"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults" mapstructure:"defaults"`
}

// PlatformConfig contains the per-post packing rules of the target platform
type PlatformConfig struct {
	HardLimit  int `yaml:"hard_limit" json:"hard_limit" mapstructure:"hard_limit"`
	OptimalMin int `yaml:"optimal_min" json:"optimal_min" mapstructure:"optimal_min"`
	OptimalMax int `yaml:"optimal_max" json:"optimal_max" mapstructure:"optimal_max"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host             string `yaml:"host" json:"host" mapstructure:"host"`
	Port             int    `yaml:"port" json:"port" mapstructure:"port"`
	LogLevel         string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms" json:"request_timeout_ms" mapstructure:"request_timeout_ms"`
	MaxBodyBytes     int64  `yaml:"max_body_bytes" json:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// DefaultsConfig contains fallbacks applied when a request omits a field
type DefaultsConfig struct {
	Tone string `yaml:"tone" json:"tone" mapstructure:"tone"`
}

// RequestTimeout returns the per-request timeout as time.Duration
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}

// Address returns the host:port address the server binds to.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BaseURL returns the URL clients use to reach the server.
func (s ServerConfig) BaseURL() string {
	return "http://" + s.Address()
}
