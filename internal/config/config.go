// Package config loads the CLI's client configuration from a YAML file,
// with environment variables taking precedence so a terminal can be
// pointed elsewhere without editing files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:8089"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	SessionFile string
	RedisAddr   string // optional shared catalog cache
}

// yamlConfig is the on-disk shape; durations travel as strings.
type yamlConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	SessionFile string `yaml:"session_file"`
	RedisAddr   string `yaml:"redis_addr"`
}

func (y yamlConfig) apply(cfg *Config) error {
	if y.BaseURL != "" {
		cfg.BaseURL = y.BaseURL
	}
	if y.SessionFile != "" {
		cfg.SessionFile = y.SessionFile
	}
	if y.RedisAddr != "" {
		cfg.RedisAddr = y.RedisAddr
	}
	if y.Timeout != "" {
		d, err := time.ParseDuration(y.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Load reads path if it exists, then applies env overrides. A missing
// file is not an error; env-only setups are common on terminals.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			var dto yamlConfig
			if err := yaml.Unmarshal(b, &dto); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if err := dto.apply(&cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("GENEX_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GENEX_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("GENEX_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse GENEX_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg, nil
}
