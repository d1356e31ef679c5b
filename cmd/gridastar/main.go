// Command gridastar is an interactive A* grid pathfinder.
//
// It supports four modes:
//  1. "tui" (default) – full-screen terminal editor: left mouse places start
//     then target, right mouse blocks cells, Space searches, Esc resets,
//     Delete clears the cell under the pointer
//  2. "solve" – searches an ASCII map file and prints the result
//  3. "serve" – HTTP and websocket API stepping random scenarios
//  4. "bench" – runs random scenarios concurrently and prints statistics
//
// Grid size and corner cutting come from flags, GRIDASTAR_* environment
// variables or a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "gridastar"
)

type config struct {
	rows       int
	columns    int
	cutCorners bool
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "find lowest-cost paths on a grid with A*",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rows",
				Value:   40,
				Usage:   "grid size along X",
				Sources: cli.EnvVars("GRIDASTAR_ROWS"),
			},
			&cli.IntFlag{
				Name:    "columns",
				Value:   40,
				Usage:   "grid size along Y",
				Sources: cli.EnvVars("GRIDASTAR_COLUMNS"),
			},
			&cli.BoolFlag{
				Name:    "cut-corners",
				Usage:   "allow diagonal moves",
				Sources: cli.EnvVars("GRIDASTAR_CUT_CORNERS"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("GRIDASTAR_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			tuiCommand(),
			solveCommand(),
			serveCommand(),
			benchCommand(),
		},
		Action: runTUI,
	}
}

// configFrom reads the grid settings. Three positional arguments
// "ROWS COLUMNS CUT_CORNERS" override the flags; give all of them or none.
func configFrom(cmd *cli.Command) (config, error) {
	cfg := config{
		rows:       cmd.Int("rows"),
		columns:    cmd.Int("columns"),
		cutCorners: cmd.Bool("cut-corners"),
	}

	switch cmd.NArg() {
	case 0:
	case 3:
		rows, err := strconv.Atoi(cmd.Args().Get(0))
		if err != nil {
			return config{}, fmt.Errorf("rows: %w", err)
		}
		columns, err := strconv.Atoi(cmd.Args().Get(1))
		if err != nil {
			return config{}, fmt.Errorf("columns: %w", err)
		}
		cut, err := strconv.ParseBool(cmd.Args().Get(2))
		if err != nil {
			return config{}, fmt.Errorf("cut corners: %w", err)
		}
		cfg = config{rows: rows, columns: columns, cutCorners: cut}
	default:
		return config{}, fmt.Errorf("expected no arguments or ROWS COLUMNS CUT_CORNERS, got %d", cmd.NArg())
	}

	if cfg.rows <= 0 || cfg.columns <= 0 {
		return config{}, fmt.Errorf("grid must be at least 1x1, got %dx%d", cfg.rows, cfg.columns)
	}
	return cfg, nil
}
