// Package config holds the settings of the dlnf command, loaded from YAML.
package config

import (
	"fmt"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/kb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"slices"
)

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Parse     ParseConfig     `yaml:"parse"`
	Expansion ExpansionConfig `yaml:"expansion"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	// Sections emitted below warn level, empty means all of them
	Sections []string `yaml:"sections"`
	// Source adds the file and line of the logging call to each record
	Source bool `yaml:"source"`
}

type ParseConfig struct {
	Workers int `yaml:"workers"`
}

type ExpansionConfig struct {
	Cycles string `yaml:"cycles"` // reject, best-effort
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "warn",
			Sections: []string{log.SectionPipeline, log.SectionCLI},
		},
		Parse: ParseConfig{
			Workers: 1,
		},
		Expansion: ExpansionConfig{
			Cycles: kb.RejectCycles.String(),
		},
	}
}

// Load overlays the YAML file at path on Default. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.CyclePolicy(); err != nil {
		return err
	}
	if c.Parse.Workers < 0 {
		return fmt.Errorf("parse.workers must not be negative, got %d", c.Parse.Workers)
	}
	for _, section := range c.Log.Sections {
		if !slices.Contains(log.AllSections, section) {
			return fmt.Errorf("unknown log section '%s'", section)
		}
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

func (c *Config) CyclePolicy() (kb.CyclePolicy, error) {
	switch c.Expansion.Cycles {
	case kb.RejectCycles.String():
		return kb.RejectCycles, nil
	case kb.BestEffort.String():
		return kb.BestEffort, nil
	default:
		return 0, fmt.Errorf("unknown cycle policy '%s', expected '%s' or '%s'", c.Expansion.Cycles, kb.RejectCycles, kb.BestEffort)
	}
}
