package main

import (
	"fmt"
	"idcode/internal/config"
	"idcode/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fileCommand constructs the 'file' subcommand that decodes the demo code and
// then every non-empty line of a text file.
func fileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [path]",
		Short: "Decodes every code of a text file, one code per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			strict, _ := cmd.Flags().GetBool("strict")
			skipDemo, _ := cmd.Flags().GetBool("skip-demo")

			path := cfg.Input.Path
			if len(args) == 1 {
				path = args[0]
			}

			dec, cleanup, err := getDecoder(ctx, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if !skipDemo && cfg.Input.DemoCode != "" {
				if _, err := dec.Code(ctx, cfg.Input.DemoCode); err != nil {
					return err
				}
			}

			summary, err := dec.File(ctx, path)
			if err != nil {
				return err
			}
			logger.Debug(ctx, "file decoded", zap.Any("summary", summary))

			if strict && summary.Invalid > 0 {
				return fmt.Errorf("%d of %d codes in %s are invalid", summary.Invalid, summary.Total, path)
			}

			return nil
		},
	}

	cmd.Flags().Bool("skip-demo", false, "Do not decode the configured demo code first")
	cmd.Flags().Bool("strict", false, "Exit with an error when any code is invalid")

	return cmd
}
