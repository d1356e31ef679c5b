// Package gridmap reads, writes and generates grid scenarios for the
// pathfinder.
//
// The text format has one line per Y coordinate; characters along a line
// run over X. Legend:
//
//	.  open cell
//	#  blocked cell
//	S  start
//	T  target
//
// When formatting a searched grid, '*' marks path cells and 'o' marks cells
// the search expanded.
package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pdrpinto/gridastar"
)

var (
	// ErrEmptyMap indicates the input holds no cells.
	ErrEmptyMap = errors.New("gridmap: map must have at least one line and one column")
	// ErrNonRectangular indicates lines of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all lines must have the same length")
	// ErrUnknownCell indicates a character outside the legend.
	ErrUnknownCell = errors.New("gridmap: unknown cell character")
	// ErrDuplicateEndpoint indicates more than one S or T.
	ErrDuplicateEndpoint = errors.New("gridmap: start and target may appear at most once")
)

const (
	cellOpen    = '.'
	cellBlocked = '#'
	cellStart   = 'S'
	cellTarget  = 'T'
	cellPath    = '*'
	cellVisited = 'o'
)

// Map is a scenario: grid size, blocked cells and optional endpoints.
type Map struct {
	Rows      int
	Columns   int
	Blocked   []gridastar.Coord
	Start     gridastar.Coord
	Target    gridastar.Coord
	HasStart  bool
	HasTarget bool
}

// Parse reads a map in the text format. Blank trailing lines are ignored.
func Parse(r io.Reader) (*Map, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{Rows: len(lines[0]), Columns: len(lines)}
	for y, line := range lines {
		if len(line) != m.Rows {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), m.Rows)
		}
		for x := 0; x < len(line); x++ {
			c := gridastar.Coord{X: x, Y: y}
			switch line[x] {
			case cellOpen:
			case cellBlocked:
				m.Blocked = append(m.Blocked, c)
			case cellStart:
				if m.HasStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateEndpoint, c)
				}
				m.Start, m.HasStart = c, true
			case cellTarget:
				if m.HasTarget {
					return nil, fmt.Errorf("%w: second target at %v", ErrDuplicateEndpoint, c)
				}
				m.Target, m.HasTarget = c, true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, line[x], c)
			}
		}
	}
	return m, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// Apply blocks the map's cells and places its endpoints on p.
func (m *Map) Apply(p *gridastar.Pathfinder) error {
	for _, c := range m.Blocked {
		if err := p.Block(c); err != nil {
			return err
		}
	}
	if m.HasStart {
		if err := p.SetStart(m.Start); err != nil {
			return err
		}
	}
	if m.HasTarget {
		if err := p.SetTarget(m.Target); err != nil {
			return err
		}
	}
	return nil
}

// NewPathfinder builds a pathfinder sized to the map and applies it.
func (m *Map) NewPathfinder(options ...gridastar.Option) (*gridastar.Pathfinder, error) {
	p, err := gridastar.New(m.Rows, m.Columns, options...)
	if err != nil {
		return nil, err
	}
	if err := m.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// String renders the map in the text format.
func (m *Map) String() string {
	blocked := make(map[gridastar.Coord]bool, len(m.Blocked))
	for _, c := range m.Blocked {
		blocked[c] = true
	}
	var b strings.Builder
	for y := 0; y < m.Columns; y++ {
		for x := 0; x < m.Rows; x++ {
			c := gridastar.Coord{X: x, Y: y}
			switch {
			case m.HasStart && c == m.Start:
				b.WriteByte(cellStart)
			case m.HasTarget && c == m.Target:
				b.WriteByte(cellTarget)
			case blocked[c]:
				b.WriteByte(cellBlocked)
			default:
				b.WriteByte(cellOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Format renders the current state of p, including search progress.
func Format(p *gridastar.Pathfinder) string {
	start, hasStart := p.Start()
	target, hasTarget := p.Target()

	var b strings.Builder
	for y := 0; y < p.Columns(); y++ {
		for x := 0; x < p.Rows(); x++ {
			c := gridastar.Coord{X: x, Y: y}
			view, ok := p.Node(c)
			switch {
			case hasStart && c == start:
				b.WriteByte(cellStart)
			case hasTarget && c == target:
				b.WriteByte(cellTarget)
			case !ok:
				b.WriteByte(cellOpen)
			case view.PathPart:
				b.WriteByte(cellPath)
			case !view.Passable:
				b.WriteByte(cellBlocked)
			case view.Visited:
				b.WriteByte(cellVisited)
			default:
				b.WriteByte(cellOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sortCoords(cs []gridastar.Coord) {
	slices.SortFunc(cs, func(a, b gridastar.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
