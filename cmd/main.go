// Package main provides the CLI entrypoint for the home finder service.
// It wires subcommands (serve, find, footprint), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"homefinder/internal/config"
	"homefinder/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands once the root command has loaded
// the configuration.
type app struct {
	configPath string
	cfg        *config.Config
}

func (a *app) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	a.cfg = cfg

	return nil
}

func main() {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "homefinder",
		Short:             "Checks whether homes matching a household's needs fit its budget",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(a),
		findCommand(a),
		footprintCommand(a),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
