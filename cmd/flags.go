package cmd

import (
	"github.com/cottand/dlnf/internal/config"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/pipeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

type commonFlags struct {
	configPath *string
	logLevel   *string
	workers    *int
	cycles     *string
}

func addCommonFlags(cmd *cobra.Command) *commonFlags {
	return &commonFlags{
		configPath: cmd.Flags().StringP("config", "c", "", "path to a YAML config file"),
		logLevel:   cmd.Flags().StringP("log-level", "l", "", "log level (debug, info, warn, error)"),
		workers:    cmd.Flags().IntP("workers", "w", 0, "number of lines parsed concurrently"),
		cycles:     cmd.Flags().String("cycles", "", "what to do with cyclic definitions (reject, best-effort)"),
	}
}

// load reads the config file and overrides it with the flags that were set
func (f *commonFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(*f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = *f.logLevel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Parse.Workers = *f.workers
	}
	if cmd.Flags().Changed("cycles") {
		cfg.Expansion.Cycles = *f.cycles
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return log.New(os.Stderr, log.Options{Level: level, Sections: cfg.Log.Sections, AddSource: cfg.Log.Source}), nil
}

func pipelineSettings(cfg *config.Config, logger *slog.Logger) (pipeline.Settings, error) {
	policy, err := cfg.CyclePolicy()
	if err != nil {
		return pipeline.Settings{}, err
	}
	return pipeline.Settings{
		Workers: cfg.Parse.Workers,
		Cycles:  policy,
		Logger:  logger,
	}, nil
}

func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read %s", path)
	}
	return string(data), nil
}
