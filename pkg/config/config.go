// Package config loads service configuration from YAML with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`

	Server struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`

	Cache struct {
		TTL time.Duration `yaml:"ttl" default:"2m"`
	} `yaml:"cache"`

	Simulator struct {
		RefreshInterval   time.Duration `yaml:"refresh_interval" default:"60s"`
		BroadcastInterval time.Duration `yaml:"broadcast_interval" default:"30s"`
		SubscriberBuffer  int           `yaml:"subscriber_buffer" default:"16"`
		SendTimeout       time.Duration `yaml:"send_timeout" default:"2s"`
	} `yaml:"simulator"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
}

// Default returns a config populated with defaults only, used when no
// config file is supplied.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file. Missing keys fall
// back to struct defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Simulator.RefreshInterval = d
		}
	}
	if v := os.Getenv("BROADCAST_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Simulator.BroadcastInterval = d
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0,65535], got %d", c.Server.Port)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Simulator.RefreshInterval <= 0 {
		return fmt.Errorf("simulator.refresh_interval must be positive")
	}
	if c.Simulator.BroadcastInterval <= 0 {
		return fmt.Errorf("simulator.broadcast_interval must be positive")
	}
	if c.Simulator.SubscriberBuffer <= 0 {
		return fmt.Errorf("simulator.subscriber_buffer must be positive")
	}
	if c.Simulator.SendTimeout <= 0 {
		return fmt.Errorf("simulator.send_timeout must be positive")
	}
	return nil
}
