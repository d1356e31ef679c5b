package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pdrpinto/gridastar/internal/batch"
	"github.com/pdrpinto/gridastar/internal/gridmap"
)

func benchCommand() *cli.Command {
	defaults := gridmap.DefaultRandomConfig()
	return &cli.Command{
		Name:  "bench",
		Usage: "search random scenarios concurrently and print statistics",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "runs", Value: 100, Usage: "number of scenarios"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "concurrent searches"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed of the first scenario"},
			&cli.IntFlag{Name: "clusters", Value: defaults.Clusters, Usage: "wall clusters per map"},
			&cli.IntFlag{Name: "steps", Value: defaults.Steps, Usage: "random-walk steps per cluster"},
			&cli.Float64Flag{Name: "density", Value: defaults.Density, Usage: "chance a walk step leaves a wall"},
		},
		Action: runBench,
	}
}

func runBench(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	// Random scenarios place start and target on distinct cells
	if cfg.rows*cfg.columns < 2 {
		return fmt.Errorf("bench: a %dx%d grid cannot hold distinct start and target cells", cfg.rows, cfg.columns)
	}
	runs := cmd.Int("runs")
	if runs < 1 {
		return fmt.Errorf("bench: --runs must be positive, got %d", runs)
	}
	wallConfig := gridmap.RandomConfig{
		Clusters: cmd.Int("clusters"),
		Steps:    cmd.Int("steps"),
		Density:  cmd.Float64("density"),
	}

	scenarios := batch.RandomScenarios(cmd.Int64("seed"), runs, cfg.rows, cfg.columns, wallConfig, cfg.cutCorners)
	began := time.Now()
	outcomes, err := batch.Run(ctx, scenarios, batch.WithWorkers(cmd.Int("workers")))
	if err != nil {
		return err
	}
	log.Printf("bench: %d scenarios on %dx%d in %s", runs, cfg.rows, cfg.columns, time.Since(began))

	fmt.Fprintln(cmd.Root().Writer, batch.Summarize(outcomes))
	return nil
}
