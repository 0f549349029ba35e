// roomba simulates a cleaning robot driving over a dusty rectangular room.
//
// Usage:
//
//	roomba                    - Run the input file and print final position and dust removed
//	roomba map                - Run and draw the room with the robot's path
//	roomba formats            - List supported input formats
//	roomba history [input]    - Show recorded runs
//	roomba convert            - Write the input room as YAML
//
// Global flags:
//
//	-i, --input <path>      - Room description (default: input.txt)
//	-l, --loglevel <level>  - CRITICAL, ERROR, WARNING, INFO or DEBUG (default: WARNING)
//	--config <path>         - Config file
//	--record                - Save the run to the history database
//	--db <path>             - History database (default: ~/.roomba/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba/internal/config"
	"github.com/vovakirdan/roomba/internal/loader"
	"github.com/vovakirdan/roomba/internal/logging"
	"github.com/vovakirdan/roomba/internal/registry"
	"github.com/vovakirdan/roomba/internal/room"
	"github.com/vovakirdan/roomba/internal/sim"
	"github.com/vovakirdan/roomba/internal/storage"

	// Import formats to register them
	_ "github.com/vovakirdan/roomba/internal/formats/text"
	_ "github.com/vovakirdan/roomba/internal/formats/yamlroom"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds the flag values and the resolved configuration shared by all
// commands of one invocation.
type app struct {
	flagInput    string
	flagLogLevel string
	flagConfig   string
	flagDBPath   string
	flagRecord   bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "roomba",
		Short: "Roomba - simulate a cleaning robot in a dusty room",
		Long: `Roomba reads a room description (size, start position, dust cells and
a line of N/S/E/W directions), drives the robot through it and prints the
final position followed by the number of dust cells removed.

Examples:
  roomba
  roomba -i rooms/office.txt -l INFO
  roomba map -i rooms/office.yaml
  roomba history rooms/office.txt`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runClean,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flagInput, "input", "i", "input.txt", "Path to the room description")
	pf.StringVarP(&a.flagLogLevel, "loglevel", "l", logging.DefaultLevel, "Log level (CRITICAL, ERROR, WARNING, INFO, DEBUG)")
	pf.StringVar(&a.flagConfig, "config", "", "Path to config file")
	pf.StringVar(&a.flagDBPath, "db", "~/.roomba/runs.db", "Path to run history database")
	pf.BoolVar(&a.flagRecord, "record", false, "Record the run in the history database")

	root.AddCommand(newMapCmd(a))
	root.AddCommand(newFormatsCmd())
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newConvertCmd(a))
	return root
}

// loadConfig resolves the configuration. Flags given on the command line win
// over config file values.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.flagInput
	}
	if flags.Changed("loglevel") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("db") {
		cfg.History.DBPath = a.flagDBPath
	}
	if flags.Changed("record") {
		cfg.History.Enabled = a.flagRecord
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) logger(cmd *cobra.Command) (*log.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
}

// simulate constructs the configured room and runs it to completion.
func (a *app) simulate(cmd *cobra.Command) (*room.Room, *sim.Engine, *log.Logger, error) {
	logger, err := a.logger(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	r, err := loader.Construct(a.cfg.Input, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	e := sim.New(r, sim.WithLogger(logger))
	e.Run()
	return r, e, logger, nil
}

func (a *app) runClean(cmd *cobra.Command, _ []string) error {
	r, e, logger, err := a.simulate(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), e.Result())
	a.record(r, e, logger)
	return nil
}

// record saves the run when history is enabled. The result has already been
// printed, so a storage failure is only logged.
func (a *app) record(r *room.Room, e *sim.Engine, logger *log.Logger) {
	if !a.cfg.History.Enabled {
		return
	}

	store, err := storage.Open(a.cfg.History.DBPath)
	if err != nil {
		logger.Warn("cannot open run history", "err", err)
		return
	}
	defer store.Close()

	formatName := registry.DefaultFormat
	if f, err := registry.ForPath(a.cfg.Input); err == nil {
		formatName = f.Name
	}

	res := e.Result()
	id, err := store.SaveRun(storage.RunRecord{
		Input:     a.cfg.Input,
		Format:    formatName,
		Width:     r.Bounds().X,
		Height:    r.Bounds().Y,
		X:         res.Position.X,
		Y:         res.Position.Y,
		Removed:   res.Removed,
		DustTotal: r.DustCount(),
		Steps:     len(r.Directions()),
	})
	if err != nil {
		logger.Warn("cannot record run", "err", err)
		return
	}
	logger.Info("run recorded", "id", id, "db", a.cfg.History.DBPath)
}
