package main

import (
	"fmt"
	"idcode/internal/config"
	"idcode/internal/report"
	"idcode/pkg/idcode"

	"github.com/spf13/cobra"
)

// facilitiesCommand constructs the 'facilities' subcommand that prints the
// registration number blocks of every birthplace facility.
func facilitiesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facilities",
		Short: "Lists the registration number range of every facility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range idcode.FacilityRanges() {
				name := r.Name()
				if cfg.Output.ASCII {
					name = report.FoldASCII(name)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%03d-%03d  %s\n", r.Min(), r.Max(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}

	return cmd
}
