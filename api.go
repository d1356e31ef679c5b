package gridastar

import (
	"fmt"
)

// Outcome describes what the last search on a Pathfinder produced.
type Outcome int

const (
	// NotRun means no search was attempted since construction or the last Reset.
	NotRun Outcome = iota
	// Searching means a stepped search has begun and not finished.
	Searching
	// Found means the target was reached and the path is flagged.
	Found
	// Unreachable means the open set drained without reaching the target.
	Unreachable
)

func (o Outcome) String() string {
	switch o {
	case NotRun:
		return "not-run"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result contains the outcome of a search
type Result struct {
	Path          []Coord
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the pathfinder.
type Options struct {
	CutCorners bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCutCorners allows diagonal moves between cells.
func WithCutCorners(enabled bool) Option {
	return func(options *Options) { options.CutCorners = enabled }
}

// Pathfinder owns a sparse grid, the search endpoints and the outcome of the
// last search. It is not safe for concurrent use.
type Pathfinder struct {
	rows       int
	columns    int
	cutCorners bool

	world     *World
	start     Coord
	target    Coord
	hasStart  bool
	hasTarget bool

	outcome Outcome
	result  Result
	active  *Search
}

// New creates a pathfinder over a rows×columns grid.
func New(rows, columns int, options ...Option) (*Pathfinder, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}

	pathfinderOptions := Options{}
	for _, option := range options {
		option(&pathfinderOptions)
	}

	return &Pathfinder{
		rows:       rows,
		columns:    columns,
		cutCorners: pathfinderOptions.CutCorners,
		world:      NewWorld(),
	}, nil
}

func (p *Pathfinder) Rows() int        { return p.rows }
func (p *Pathfinder) Columns() int     { return p.columns }
func (p *Pathfinder) CutCorners() bool { return p.cutCorners }
func (p *Pathfinder) Outcome() Outcome { return p.outcome }

// NodeCount returns how many cells currently hold a node.
func (p *Pathfinder) NodeCount() int { return p.world.Len() }

// FoundPath reports whether a search has been attempted since the last
// Reset. While it is true the grid and endpoints are locked.
func (p *Pathfinder) FoundPath() bool { return p.outcome != NotRun }

// InBounds reports whether c lies inside the grid.
func (p *Pathfinder) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < p.rows && c.Y >= 0 && c.Y < p.columns
}

// Start returns the start cell, if set.
func (p *Pathfinder) Start() (Coord, bool) { return p.start, p.hasStart }

// Target returns the target cell, if set.
func (p *Pathfinder) Target() (Coord, bool) { return p.target, p.hasTarget }

// Node returns the rendering view of the cell at c if it has been materialised.
func (p *Pathfinder) Node(c Coord) (NodeView, bool) {
	n, ok := p.world.Get(c)
	if !ok {
		return NodeView{}, false
	}
	return n.view(), true
}

func (p *Pathfinder) checkBounds(c Coord) error {
	if !p.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, p.rows, p.columns)
	}
	return nil
}

func (p *Pathfinder) checkMutable(c Coord) error {
	if err := p.checkBounds(c); err != nil {
		return err
	}
	switch p.outcome {
	case NotRun:
		return nil
	case Searching:
		return ErrSearchInProgress
	default:
		return ErrPathFound
	}
}

// SetStart places the start cell. A cell that is already the target is
// ignored.
func (p *Pathfinder) SetStart(c Coord) error {
	if err := p.checkMutable(c); err != nil {
		return err
	}
	if p.hasTarget && p.target == c {
		return nil
	}
	p.start, p.hasStart = c, true
	return nil
}

// SetTarget places the target cell. It is ignored until a start is set and
// when c is the start.
func (p *Pathfinder) SetTarget(c Coord) error {
	if err := p.checkMutable(c); err != nil {
		return err
	}
	if !p.hasStart || p.start == c {
		return nil
	}
	p.target, p.hasTarget = c, true
	return nil
}

// Select sets the start if it is unset, otherwise the target if that is
// unset. Once both are placed it does nothing.
func (p *Pathfinder) Select(c Coord) error {
	if !p.hasStart {
		return p.SetStart(c)
	}
	if !p.hasTarget {
		return p.SetTarget(c)
	}
	return p.checkMutable(c)
}

// Block marks the cell at c impassable.
func (p *Pathfinder) Block(c Coord) error {
	if err := p.checkMutable(c); err != nil {
		return err
	}
	p.world.GetOrCreate(c).passable = false
	return nil
}

// ClearCell reverts the cell at c to its default state and unsets the start
// or target placed there. It is allowed after a search has finished.
func (p *Pathfinder) ClearCell(c Coord) error {
	if err := p.checkBounds(c); err != nil {
		return err
	}
	if p.outcome == Searching {
		return ErrSearchInProgress
	}
	p.world.Remove(c)
	if p.hasStart && p.start == c {
		p.hasStart = false
	}
	if p.hasTarget && p.target == c {
		p.hasTarget = false
	}
	return nil
}

// Reset clears the grid, both endpoints and the outcome. A stepped search in
// progress is abandoned.
func (p *Pathfinder) Reset() {
	if p.active != nil {
		p.active.abandon()
		p.active = nil
	}
	p.world.Clear()
	p.start, p.hasStart = Coord{}, false
	p.target, p.hasTarget = Coord{}, false
	p.outcome = NotRun
	p.result = Result{}
}

// Begin starts a search that is advanced with Search.Step. The pathfinder
// stays locked from here until Reset.
func (p *Pathfinder) Begin() (*Search, error) {
	if !p.hasStart || !p.hasTarget {
		return nil, ErrMissingEndpoint
	}
	switch p.outcome {
	case Searching:
		return nil, ErrSearchInProgress
	case Found, Unreachable:
		return nil, ErrPathFound
	}

	p.active = newSearch(p)
	p.outcome = Searching
	return p.active, nil
}

// FindPath runs A* from start to target to completion and flags the nodes
// on the path. It returns ErrNoPath when the target cannot be reached.
// Calling it again before Reset returns the same result without searching.
func (p *Pathfinder) FindPath() (Result, error) {
	// ClearCell may drop an endpoint after the search finished
	if !p.hasStart || !p.hasTarget {
		return Result{}, ErrMissingEndpoint
	}
	switch p.outcome {
	case Searching:
		return Result{}, ErrSearchInProgress
	case Found:
		return p.result, nil
	case Unreachable:
		return p.result, ErrNoPath
	}

	search, err := p.Begin()
	if err != nil {
		return Result{}, err
	}
	return search.Run()
}

func (p *Pathfinder) finish(s *Search, result Result) {
	if p.active != s {
		return
	}
	p.active = nil
	p.result = result
	if result.Found {
		p.outcome = Found
	} else {
		p.outcome = Unreachable
	}
}
