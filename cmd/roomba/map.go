package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba/internal/render"
)

func newMapCmd(a *app) *cobra.Command {
	var (
		trail   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Run the simulation and draw the room",
		Long: `Runs the input file like the root command, then draws the room with
north at the top. The final position and dust count follow the map.
Rooms wider or taller than 256 cells are not drawn; only the result is
printed.

Examples:
  roomba map
  roomba map -i rooms/office.yaml --trail=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("trail") {
				a.cfg.Map.Trail = trail
			}

			r, e, logger, err := a.simulate(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styled := !noColor && isTerminal(out)

			screen, err := render.Map(r, e, render.Options{Trail: a.cfg.Map.Trail})
			switch {
			case errors.Is(err, render.ErrTooLarge):
				// Only the result is printed for rooms that cannot be drawn.
				logger.Warn("room is too large to draw", "bounds", r.Bounds(), "max", render.MaxSide)
			case err != nil:
				return err
			default:
				fmt.Fprintln(out, render.String(screen, styled))
				fmt.Fprintln(out, render.Legend())
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, e.Result())

			a.record(r, e, logger)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trail, "trail", true, "Mark cells the robot passed through (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors even on a terminal")
	return cmd
}
