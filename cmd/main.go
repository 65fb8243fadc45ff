// Package main provides the CLI entrypoint for the personal code decoder.
// It wires subcommands (decode, file, checksum, facilities), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"idcode/internal/config"
	"idcode/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// applyOutputFlags lets command line flags override the output configuration.
func applyOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("ascii") {
		cfg.Output.ASCII, _ = flags.GetBool("ascii")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return nil
}

// main sets up the root Cobra command, loads configuration and logging before
// any subcommand runs, and registers subcommands before executing the CLI.
func main() {
	// filled by PersistentPreRunE before any subcommand runs
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "idcode",
		Short:        "Decodes and validates 11-digit personal identification codes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			*cfg = *loaded

			if err := applyOutputFlags(cmd, cfg); err != nil {
				return err
			}

			if err := logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().String("format", config.FormatText, "Output format (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored error lines")
	rootCmd.PersistentFlags().Bool("ascii", false, "Print facility names without diacritics")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		decodeCommand(cfg),
		fileCommand(cfg),
		checksumCommand(),
		facilitiesCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
