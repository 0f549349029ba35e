package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba/internal/storage"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit     int
		clearRuns bool
	)

	cmd := &cobra.Command{
		Use:   "history [input]",
		Short: "Show recorded runs",
		Long: `Display the most recent runs saved with --record (or history.enabled in
the config). With an input path, only runs of that file are shown together
with its best run and statistics.

Examples:
  roomba history
  roomba history input.txt
  roomba history input.txt --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.History.Limit
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			store, err := storage.Open(a.cfg.History.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clearRuns {
				if err := store.ClearRuns(input); err != nil {
					return err
				}
				if input == "" {
					fmt.Fprintln(out, "Run history cleared.")
				} else {
					fmt.Fprintf(out, "Run history of %s cleared.\n", input)
				}
				return nil
			}

			var runs []storage.RunRecord
			if input == "" {
				runs, err = store.RecentRuns(limit)
			} else {
				runs, err = store.RunsForInput(input, limit)
			}
			if err != nil {
				return err
			}

			if input == "" {
				fmt.Fprintln(out, "Recent runs")
			} else {
				fmt.Fprintf(out, "Runs - %s\n", input)
			}
			fmt.Fprintln(out)

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Run 'roomba --record' to start recording.")
				return nil
			}

			printRuns(out, runs)

			if input == "" {
				return nil
			}
			return printStats(out, store, input)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show (default from config)")
	cmd.Flags().BoolVar(&clearRuns, "clear", false, "Delete recorded runs instead of showing them")
	return cmd
}

func printRuns(out io.Writer, runs []storage.RunRecord) {
	fmt.Fprintf(out, "  %-4s  %-16s  %-20s  %-6s  %-9s  %-7s  %s\n",
		"ID", "Date", "Input", "Room", "Position", "Removed", "Host")
	fmt.Fprintf(out, "  %-4s  %-16s  %-20s  %-6s  %-9s  %-7s  %s\n",
		"--", "----", "-----", "----", "--------", "-------", "----")

	for _, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-16s  %-20s  %-6s  %-9s  %-7s  %s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Input,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d %d", r.X, r.Y),
			fmt.Sprintf("%d/%d", r.Removed, r.DustTotal),
			r.Host,
		)
	}
}

func printStats(out io.Writer, store *storage.Store, input string) error {
	stats, err := store.Stats(input)
	if err != nil {
		return err
	}
	best, err := store.BestRun(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Average removed: %.1f\n", stats.Runs, stats.AvgRemoved)
	if best != nil {
		fmt.Fprintf(out, "Best: %d removed (run %d, final position %d %d)\n",
			best.Removed, best.ID, best.X, best.Y)
	}
	return nil
}
