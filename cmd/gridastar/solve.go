package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridmap"
)

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "search an ASCII map ('.' open, '#' blocked, 'S' start, 'T' target)",
		ArgsUsage: "FILE|-",
		Action:    runSolve,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("solve: expected exactly one map file (or - for stdin)")
	}

	var in io.Reader = cmd.Root().Reader
	if in == nil {
		in = os.Stdin
	}
	if name := cmd.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	m, err := gridmap.Parse(in)
	if err != nil {
		return err
	}
	pathfinder, err := m.NewPathfinder(gridastar.WithCutCorners(cmd.Bool("cut-corners")))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	res, err := pathfinder.FindPath()
	fmt.Fprint(out, gridmap.Format(pathfinder))
	switch {
	case errors.Is(err, gridastar.ErrNoPath):
		fmt.Fprintf(out, "no path, %d expanded\n", res.ExpandedNodes)
		return err
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "cost %.3f, %d cells, %d expanded\n", res.TotalCost, len(res.Path), res.ExpandedNodes)
	return nil
}
