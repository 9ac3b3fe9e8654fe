package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SkillRule extends the built-in skill dictionary from config.
type SkillRule struct {
	Name string   `yaml:"name"`
	Any  []string `yaml:"any"`
}

type Config struct {
	Fetch struct {
		TimeoutSeconds   int     `yaml:"timeout_seconds"`
		RetryWaitSeconds int     `yaml:"retry_wait_seconds"`
		PerHostRate      float64 `yaml:"per_host_rate"`
		PerHostBurst     int     `yaml:"per_host_burst"`
		UserAgent        string  `yaml:"user_agent"`
	} `yaml:"fetch"`

	Aggregation struct {
		MaxConcurrent       int `yaml:"max_concurrent"`
		BoardTimeoutSeconds int `yaml:"board_timeout_seconds"`
	} `yaml:"aggregation"`

	Batch struct {
		Limit               int `yaml:"limit"`
		PacingSeconds       int `yaml:"pacing_seconds"`
		PacingJitterSeconds int `yaml:"pacing_jitter_seconds"`
	} `yaml:"batch"`

	Filters struct {
		Stacks    []string `yaml:"stacks"`
		Locations []string `yaml:"locations"`
		MinSalary int      `yaml:"min_salary"`
	} `yaml:"filters"`

	Skills []SkillRule `yaml:"skills"`
}

// Default is the conservative baseline every load starts from.
func Default() Config {
	var cfg Config
	cfg.Fetch.TimeoutSeconds = 15
	cfg.Fetch.RetryWaitSeconds = 2
	cfg.Fetch.PerHostRate = 2.0
	cfg.Fetch.PerHostBurst = 4
	cfg.Aggregation.MaxConcurrent = 6
	cfg.Aggregation.BoardTimeoutSeconds = 30
	cfg.Batch.Limit = 25
	cfg.Batch.PacingSeconds = 3
	cfg.Batch.PacingJitterSeconds = 1
	return cfg
}

// Load overlays the YAML file at path onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

func (c Config) RetryWait() time.Duration {
	return time.Duration(c.Fetch.RetryWaitSeconds) * time.Second
}

func (c Config) BoardTimeout() time.Duration {
	return time.Duration(c.Aggregation.BoardTimeoutSeconds) * time.Second
}

func (c Config) Pacing() time.Duration {
	return time.Duration(c.Batch.PacingSeconds) * time.Second
}

func (c Config) PacingJitter() time.Duration {
	return time.Duration(c.Batch.PacingJitterSeconds) * time.Second
}
