package main

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cellgame/internal/app"
	"cellgame/internal/logging"
	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
	"cellgame/pkg/event"
	"cellgame/pkg/view"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a cell grid in the terminal",
	RunE:  runGrid,
}

func init() {
	runCmd.Flags().String("kind", "boolean", "cell kind (integer or boolean)")
	runCmd.Flags().Int("rows", 10, "grid rows")
	runCmd.Flags().Int("cols", 10, "grid columns")
	runCmd.Flags().Int("generations", 10, "generations to play")
	runCmd.Flags().Int("interval-ms", 500, "delay between generations in milliseconds")
	runCmd.Flags().Int64("seed", 1337, "random seed for the initial state")
	runCmd.Flags().Bool("random", true, "randomize the initial state")
	rootCmd.AddCommand(runCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(logging.ParseLevel(cfg.LogLevel))
	defer func() { _ = log.Sync() }()

	kind, ok := cell.Lookup(cfg.Kind)
	if !ok {
		return fmt.Errorf("unknown cell kind %q", cfg.Kind)
	}

	bus := event.NewBus()
	grid := cellnet.NewGrid(kind, cfg.Rows, cfg.Cols, bus)
	net := cellnet.New(grid, bus)
	gv := view.NewGrid(grid, bus)

	if cfg.Random {
		if err := app.SeedGrid(grid, cfg.Seed); err != nil {
			return err
		}
	}

	out := termenv.NewOutput(os.Stdout)
	title := out.String(fmt.Sprintf("cellgame %s %dx%d", kind.Name, cfg.Rows, cfg.Cols)).Bold()
	interval := time.Duration(cfg.IntervalMS) * time.Millisecond

	for g := 0; ; g++ {
		fmt.Fprintf(out, "%s  gen %d\n%s\n\n", title, net.Generation(), gv)
		if g == cfg.Generations {
			return nil
		}
		time.Sleep(interval)

		start := time.Now()
		if err := net.Tick(1); err != nil {
			return err
		}
		log.Debug("ticked",
			zap.Int("generation", net.Generation()),
			zap.Duration("took", time.Since(start)))
	}
}

// loadRunConfig starts from the file/env config and overlays any flags the
// user actually set.
func loadRunConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg, err := app.Load()
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("kind") {
		cfg.Kind, _ = f.GetString("kind")
	}
	if f.Changed("rows") {
		cfg.Rows, _ = f.GetInt("rows")
	}
	if f.Changed("cols") {
		cfg.Cols, _ = f.GetInt("cols")
	}
	if f.Changed("generations") {
		cfg.Generations, _ = f.GetInt("generations")
	}
	if f.Changed("interval-ms") {
		cfg.IntervalMS, _ = f.GetInt("interval-ms")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("random") {
		cfg.Random, _ = f.GetBool("random")
	}
	if root := cmd.Root().PersistentFlags(); root.Changed("log-level") {
		cfg.LogLevel, _ = root.GetString("log-level")
	}
	return cfg, nil
}
