package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/config"
	"github.com/aretw0/lineviz/internal/logging"
	"github.com/aretw0/lineviz/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "lineviz",
	Short: "lineviz is a step-by-step visualizer for stacks, queues and postfix conversion",
	Long: `lineviz drives a bounded stack, a circular queue and an incremental
infix-to-postfix converter. Every operation can be undone and redone.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override the log level (debug, info, warn, error, off)")
}

// loadConfig reads the config named by --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger, err := logging.FromConfig(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// workbenchOptions turns cfg into Workbench options.
func workbenchOptions(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) []lineviz.Option {
	return []lineviz.Option{
		lineviz.WithLogger(logger),
		lineviz.WithCapacity(cfg.Capacity),
		lineviz.WithAnimationTicks(cfg.Animation.StackTicks, cfg.Animation.QueueTicks),
		lineviz.WithLifecycleHooks(hooks),
	}
}
