package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-denoise/config"
	"github.com/cwbudde/algo-denoise/internal/logger"
)

type rootOptions struct {
	cfgPath  string
	logLevel string
	dev      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sigscope",
		Short:         "Generate, corrupt and low-pass filter a test signal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.dev, "dev", false, "human-readable console logging")

	root.AddCommand(newRunCmd(opts), newFiltersCmd(opts))
	return root
}

// load reads the configuration and applies the persistent logging flags.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if cmd.Flags().Changed("dev") {
		cfg.Logging.Dev = o.dev
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New("sigscope", cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}
