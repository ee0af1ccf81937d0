// Package config handles configuration loading and validation for taskpad.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// taskFileName is the single storage record: a JSON array of tasks.
const taskFileName = "tasks.v1.json"

// Config holds the application configuration.
type Config struct {
	Theme      string `yaml:"theme"`
	Sound      *bool  `yaml:"sound"` // nil means enabled
	ToastTTLMS int    `yaml:"toast_ttl_ms"`
	TaskFile   string `yaml:"task_file"`
	DataDir    string `yaml:"-"` // set by caller, not from config file
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:      "tokyo-night",
		ToastTTLMS: 5000,
	}
}

// Load reads the config file at path, applying defaults for missing values.
// A missing file is not an error; the defaults are returned.
func Load(path string, dataDir string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = dataDir

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ToastTTLMS <= 0 {
		cfg.ToastTTLMS = 5000
	}

	return cfg, nil
}

// SoundEnabled reports whether audio cues should play.
func (c *Config) SoundEnabled() bool {
	return c.Sound == nil || *c.Sound
}

// ToastTTL returns the toast lifetime as a duration.
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.ToastTTLMS) * time.Millisecond
}

// TaskFilePath returns the path of the task storage file, honoring the
// task_file override when set.
func (c *Config) TaskFilePath() string {
	if c.TaskFile != "" {
		return c.TaskFile
	}
	return filepath.Join(c.DataDir, taskFileName)
}
