// Package batch runs many independent pathfinding scenarios across a pool
// of worker goroutines. Each scenario gets its own Pathfinder, so workers
// share no search state.
package batch

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridmap"
)

// Scenario is one search job handed to a worker.
type Scenario struct {
	ID         int
	Map        *gridmap.Map
	CutCorners bool
}

// Outcome is the worker's report for one scenario.
type Outcome struct {
	ScenarioID int
	Result     gridastar.Result
}

// Options defines parameters for a batch run.
type Options struct {
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many scenarios run at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// Run searches every scenario and returns the outcomes in scenario order.
// An unreachable target is a normal outcome; any other error stops the run.
func Run(ctx context.Context, scenarios []Scenario, options ...Option) ([]Outcome, error) {
	runOptions := Options{NumberOfWorkers: runtime.NumCPU()}
	for _, option := range options {
		option(&runOptions)
	}
	if runOptions.NumberOfWorkers < 1 {
		runOptions.NumberOfWorkers = 1
	}

	outcomes := make([]Outcome, len(scenarios))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runOptions.NumberOfWorkers)

	for i, scenario := range scenarios {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := solve(scenario)
			if err != nil {
				return fmt.Errorf("batch: scenario %d: %w", scenario.ID, err)
			}
			outcomes[i] = Outcome{ScenarioID: scenario.ID, Result: result}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func solve(scenario Scenario) (gridastar.Result, error) {
	p, err := scenario.Map.NewPathfinder(gridastar.WithCutCorners(scenario.CutCorners))
	if err != nil {
		return gridastar.Result{}, err
	}
	result, err := p.FindPath()
	if err != nil && !errors.Is(err, gridastar.ErrNoPath) {
		return gridastar.Result{}, err
	}
	return result, nil
}

// RandomScenarios generates count random scenarios. Scenario i is seeded
// with seed+i so individual scenarios can be reproduced.
func RandomScenarios(seed int64, count, rows, columns int, cfg gridmap.RandomConfig, cutCorners bool) []Scenario {
	scenarios := make([]Scenario, count)
	for i := range scenarios {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		scenarios[i] = Scenario{
			ID:         i,
			Map:        gridmap.Random(rng, rows, columns, cfg),
			CutCorners: cutCorners,
		}
	}
	return scenarios
}
