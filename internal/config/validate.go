package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// HasErrors returns true if there are any validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// validLogLevels defines the allowed log level values
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validTones defines the allowed default tone values
var validTones = map[string]bool{
	"professional":   true,
	"casual":         true,
	"educational":    true,
	"conversational": true,
}

// Validate checks the configuration for errors and returns all validation errors found
func Validate(cfg *Config) ValidationErrors {
	var errors ValidationErrors

	// Platform validation
	if cfg.Platform.HardLimit < 1 {
		errors = append(errors, ValidationError{
			Field:   "platform.hard_limit",
			Message: "must be positive",
		})
	}
	if cfg.Platform.OptimalMin < 1 {
		errors = append(errors, ValidationError{
			Field:   "platform.optimal_min",
			Message: "must be positive",
		})
	}
	if cfg.Platform.OptimalMax < cfg.Platform.OptimalMin {
		errors = append(errors, ValidationError{
			Field:   "platform.optimal_max",
			Message: "must not be below optimal_min",
		})
	}
	if cfg.Platform.OptimalMax > cfg.Platform.HardLimit {
		errors = append(errors, ValidationError{
			Field:   "platform.optimal_max",
			Message: "must not exceed hard_limit",
		})
	}

	// Server validation
	if cfg.Server.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "server.host",
			Message: "must not be empty",
		})
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "must be between 1 and 65535",
		})
	}
	if !validLogLevels[cfg.Server.LogLevel] {
		errors = append(errors, ValidationError{
			Field:   "server.log_level",
			Message: fmt.Sprintf("invalid log level '%s'; valid values are: debug, info, warn, error", cfg.Server.LogLevel),
		})
	}
	if cfg.Server.RequestTimeoutMs < 1 {
		errors = append(errors, ValidationError{
			Field:   "server.request_timeout_ms",
			Message: "must be positive",
		})
	}
	if cfg.Server.MaxBodyBytes < 1 {
		errors = append(errors, ValidationError{
			Field:   "server.max_body_bytes",
			Message: "must be positive",
		})
	}

	// Defaults validation
	if !validTones[cfg.Defaults.Tone] {
		errors = append(errors, ValidationError{
			Field:   "defaults.tone",
			Message: fmt.Sprintf("invalid tone '%s'; valid values are: professional, casual, educational, conversational", cfg.Defaults.Tone),
		})
	}

	return errors
}

// ValidateOrError is a convenience function that returns an error if validation fails
func ValidateOrError(cfg *Config) error {
	errors := Validate(cfg)
	if errors.HasErrors() {
		return errors
	}
	return nil
}
