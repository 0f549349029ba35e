package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba/internal/formats/yamlroom"
	"github.com/vovakirdan/roomba/internal/loader"
)

func newConvertCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the input room as a YAML document",
		Long: `Reads the input file in any supported format, validates it and writes it
back as a YAML room. Dust cells are deduplicated and sorted.

Examples:
  roomba convert -i input.txt
  roomba convert -i input.txt -o room.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.logger(cmd)
			if err != nil {
				return err
			}

			r, err := loader.Construct(a.cfg.Input, logger)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return yamlroom.Encode(cmd.OutOrStdout(), r)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("convert: cannot create %s: %w", output, err)
			}
			if err := yamlroom.Encode(f, r); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("convert: cannot write %s: %w", output, err)
			}
			logger.Info("room converted", "from", a.cfg.Input, "to", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
