package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Backend BackendConfig `mapstructure:"backend"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// BackendConfig points at the inference backend.
type BackendConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// MonitorConfig controls the connection monitor's probe schedule.
type MonitorConfig struct {
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout"`
	RetryDelay     time.Duration `mapstructure:"retry_delay"`
	MaxAutoRetries int           `mapstructure:"max_auto_retries"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "marketpulse-client"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:5000"
	}
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = 60 * time.Second
	}
	if cfg.Monitor.ProbeTimeout <= 0 {
		cfg.Monitor.ProbeTimeout = 5 * time.Second
	}
	if cfg.Monitor.RetryDelay <= 0 {
		cfg.Monitor.RetryDelay = 3 * time.Second
	}
	if cfg.Monitor.MaxAutoRetries <= 0 {
		cfg.Monitor.MaxAutoRetries = 3
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must be set")
	}
	if cfg.Backend.RequestTimeout <= 0 {
		return fmt.Errorf("backend.request_timeout must be positive")
	}
	if cfg.Monitor.RetryDelay <= 0 {
		return fmt.Errorf("monitor.retry_delay must be positive")
	}
	if cfg.Monitor.MaxAutoRetries <= 0 {
		return fmt.Errorf("monitor.max_auto_retries must be positive")
	}
	return nil
}
