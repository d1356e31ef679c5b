package gridastar

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/pdrpinto/gridastar/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Coord   `json:"current"`
	Open      []Coord `json:"open,omitempty"`
	Expanded  int     `json:"expanded"`
	Done      bool    `json:"done"`
	Found     bool    `json:"found"`
	Path      []Coord `json:"path,omitempty"`
	TotalCost float64 `json:"total_cost,omitempty"`
	StepIndex int     `json:"step"`
}

// Search is one A* run over a Pathfinder's world, advanced one expansion
// per Step.
type Search struct {
	pathfinder *Pathfinder
	world      *World
	start      Coord
	target     Coord

	openSet    PriorityQueue
	openSetMap map[Coord]struct{}
	nextSeq    uint64

	current   Coord
	stepCount int
	done      bool
	abandoned bool
	result    Result
}

func newSearch(p *Pathfinder) *Search {
	s := &Search{
		pathfinder: p,
		world:      p.world,
		start:      p.start,
		target:     p.target,
		openSet:    make(PriorityQueue, 0),
		openSetMap: make(map[Coord]struct{}),
		current:    p.start,
	}

	startNode := s.world.GetOrCreate(s.start)
	s.world.GetOrCreate(s.target)
	startNode.g = 0
	startNode.h = 0

	heap.Init(&s.openSet)
	s.push(s.start, startNode.FCost())
	return s
}

func (s *Search) push(c Coord, f float64) {
	heap.Push(&s.openSet, &PriorityQueueItem{Cell: c, FCost: f, seq: s.nextSeq})
	s.nextSeq++
	s.openSetMap[c] = struct{}{}
}

// Done reports whether the search has finished.
func (s *Search) Done() bool { return s.done }

// Step expands the next open node and returns a snapshot. Once the search is
// done it keeps returning the final snapshot.
func (s *Search) Step() (StepSnapshot, error) {
	if s.abandoned {
		return s.snapshot(), ErrSearchAbandoned
	}
	if s.done {
		return s.snapshot(), nil
	}

	for s.openSet.Len() > 0 {
		item := heap.Pop(&s.openSet).(*PriorityQueueItem)
		currentNode := s.world.GetOrCreate(item.Cell)

		// Stale duplicate of an already expanded cell
		if currentNode.visited {
			continue
		}
		delete(s.openSetMap, item.Cell)
		currentNode.visited = true
		s.current = item.Cell
		s.stepCount++

		if item.Cell == s.target {
			s.finish(Result{
				Path:          s.retrace(),
				TotalCost:     currentNode.g,
				ExpandedNodes: s.stepCount,
				Found:         true,
			})
			return s.snapshot(), nil
		}

		s.expand(currentNode)
		return s.snapshot(), nil
	}

	s.finish(Result{ExpandedNodes: s.stepCount})
	return s.snapshot(), nil
}

// Run steps the search to completion.
func (s *Search) Run() (Result, error) {
	for !s.done {
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}
	return s.Result()
}

// Result returns the final result of a finished search.
func (s *Search) Result() (Result, error) {
	switch {
	case s.abandoned:
		return Result{}, ErrSearchAbandoned
	case !s.done:
		return Result{}, ErrSearchInProgress
	case !s.result.Found:
		return s.result, ErrNoPath
	}
	return s.result, nil
}

func (s *Search) expand(currentNode *Node) {
	p := s.pathfinder
	from := currentNode.coord
	for _, offset := range neighborOffsets {
		to := Coord{X: from.X + offset[0], Y: from.Y + offset[1]}
		if !p.InBounds(to) {
			continue
		}
		if !p.cutCorners && from.IsDiagonalTo(to) {
			continue
		}

		neighborNode := s.world.GetOrCreate(to)
		if neighborNode.visited || !neighborNode.passable {
			continue
		}

		tentativeG := currentNode.g + from.Distance(to)
		if tentativeG < neighborNode.g {
			neighborNode.g = tentativeG
			neighborNode.parent, neighborNode.hasParent = from, true
			neighborNode.h = to.Distance(s.target)
			s.push(to, neighborNode.FCost())
		}
	}
}

// retrace flags the nodes from target back to start (start excluded) and
// returns the path in start-to-target order.
func (s *Search) retrace() []Coord {
	path := []Coord{s.target}
	current := s.target
	for current != s.start {
		node, ok := s.world.Get(current)
		if !ok {
			break
		}
		node.pathPart = true
		parent, ok := node.Parent()
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}
	internal.Reverse(path)
	return path
}

func (s *Search) finish(result Result) {
	s.done = true
	s.result = result
	s.pathfinder.finish(s, result)
}

func (s *Search) abandon() {
	s.done = true
	s.abandoned = true
}

func (s *Search) snapshot() StepSnapshot {
	open := make([]Coord, 0, len(s.openSetMap))
	for c := range s.openSetMap {
		open = append(open, c)
	}
	slices.SortFunc(open, func(a, b Coord) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
	})

	return StepSnapshot{
		Current:   s.current,
		Open:      open,
		Expanded:  s.stepCount,
		Done:      s.done,
		Found:     s.result.Found,
		Path:      s.result.Path,
		TotalCost: s.result.TotalCost,
		StepIndex: s.stepCount,
	}
}
