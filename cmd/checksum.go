package main

import (
	"fmt"
	"idcode/pkg/idcode"

	"github.com/spf13/cobra"
)

// checksumCommand constructs the 'checksum' subcommand that completes a
// 10-digit prefix with its check digit.
func checksumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum <prefix>",
		Short: "Prints the full code for the given first 10 digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := idcode.Checksum(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", args[0], c)

			return err
		},
	}

	return cmd
}
