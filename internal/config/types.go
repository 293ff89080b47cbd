package config

import "time"

// RateLimit bounds how often one client may shuffle the cat picture.
type RateLimit struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Window      time.Duration `yaml:"window"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int       `yaml:"port"`
	ShuffleLimit RateLimit `yaml:"shuffle_limit"`
}

// CatsConfig describes the homepage cat picture.
type CatsConfig struct {
	Images      []string `yaml:"images"`
	Prefix      string   `yaml:"prefix"`
	ElementID   string   `yaml:"element_id"`
	Placeholder string   `yaml:"placeholder,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config represents the site.yaml file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cats   CatsConfig   `yaml:"cats"`
	Log    LogConfig    `yaml:"log"`
}
