package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ssaunders/site/internal/applier"
	"github.com/ssaunders/site/internal/cycler"
	"github.com/ssaunders/site/internal/logging"
)

// FileName is the config file looked up in the base directory.
const FileName = "site.yaml"

// Default values for Config.
const (
	DefaultServerPort      = 5000
	DefaultShuffleAttempts = 30
	DefaultShuffleWindow   = time.Minute
	DefaultLogLevel        = "warn"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: DefaultServerPort,
			ShuffleLimit: RateLimit{
				MaxAttempts: DefaultShuffleAttempts,
				Window:      DefaultShuffleWindow,
			},
		},
		Cats: CatsConfig{
			Images:    append([]string(nil), cycler.DefaultImages...),
			Prefix:    applier.DefaultPrefix,
			ElementID: applier.DefaultElementID,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads site.yaml from the given base path.
func LoadConfig(basePath string) (*Config, error) {
	return LoadConfigFile(filepath.Join(basePath, FileName))
}

// LoadConfigFile reads and parses the config file at path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
// An empty image list is allowed; the homepage then keeps its initial picture.
func ValidateConfig(cfg *Config) error {
	if err := ValidateServerConfig(&cfg.Server); err != nil {
		return err
	}
	for i, name := range cfg.Cats.Images {
		if name == "" {
			return ValidationError{Field: fmt.Sprintf("cats.images[%d]", i), Message: "required field is empty"}
		}
	}
	if cfg.Cats.ElementID == "" {
		return ValidationError{Field: "cats.element_id", Message: "required field is empty"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// ValidateServerConfig checks that server config values are valid.
func ValidateServerConfig(cfg *ServerConfig) error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return ValidationError{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	if cfg.ShuffleLimit.MaxAttempts <= 0 {
		return ValidationError{Field: "server.shuffle_limit.max_attempts", Message: "must be positive"}
	}
	if cfg.ShuffleLimit.Window <= 0 {
		return ValidationError{Field: "server.shuffle_limit.window", Message: "must be positive"}
	}
	return nil
}

// LogLevel returns the parsed log level. It falls back to warn for values
// ValidateConfig would reject.
func (c *Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
