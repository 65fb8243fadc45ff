package main

import (
	"fmt"
	"idcode/internal/config"
	"idcode/internal/source"

	"github.com/spf13/cobra"
)

// decodeCommand constructs the 'decode' subcommand that decodes the codes given
// as arguments, read from stdin, or the configured demo code when none are given.
func decodeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [code...]",
		Short: "Decodes the given personal codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			strict, _ := cmd.Flags().GetBool("strict")
			stdin, _ := cmd.Flags().GetBool("stdin")

			codes := args
			if stdin {
				read, err := source.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				codes = append(codes, read...)
			}
			if len(codes) == 0 {
				codes = []string{cfg.Input.DemoCode}
			}

			dec, cleanup, err := getDecoder(ctx, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			invalid := 0
			for _, code := range codes {
				rec, err := dec.Code(ctx, code)
				if err != nil {
					return err
				}
				if !rec.Valid() {
					invalid++
				}
			}

			if strict && invalid > 0 {
				return fmt.Errorf("%d of %d codes are invalid", invalid, len(codes))
			}

			return nil
		},
	}

	cmd.Flags().Bool("stdin", false, "Also read codes from stdin, one per line")
	cmd.Flags().Bool("strict", false, "Exit with an error when any code is invalid")

	return cmd
}
