package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/pdrpinto/gridastar"
)

// Each grid cell is drawn two terminal columns wide so cells look square.
const cellWidth = 2

const helpLine = "L-click start/target  R-click block  Space search  Del clear  Esc reset  q quit"

var (
	colorEmpty   = tcell.ColorWhite
	colorStart   = tcell.ColorRed
	colorTarget  = tcell.ColorBlue
	colorTouched = tcell.ColorYellow
	colorPath    = tcell.ColorGreen
	colorBlocked = tcell.ColorBlack
	colorVisited = tcell.ColorOrange
)

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "edit the grid and run searches interactively",
		ArgsUsage: "[ROWS COLUMNS CUT_CORNERS]",
		Action:    runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	pathfinder, err := gridastar.New(cfg.rows, cfg.columns, gridastar.WithCutCorners(cfg.cutCorners))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	b := &board{pathfinder: pathfinder, status: helpLine}
	for {
		b.draw(screen)
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if !b.handle(ev) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// board maps terminal events onto pathfinder mutations.
type board struct {
	pathfinder *gridastar.Pathfinder
	pointer    gridastar.Coord
	hasPointer bool
	status     string
}

func (b *board) cellAt(screenX, screenY int) (gridastar.Coord, bool) {
	c := gridastar.Coord{X: screenX / cellWidth, Y: screenY}
	return c, screenX >= 0 && b.pathfinder.InBounds(c)
}

// handle applies one event and reports whether the UI should keep running.
func (b *board) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEscape:
			b.pathfinder.Reset()
			b.status = helpLine
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			b.search()
		case ev.Key() == tcell.KeyDelete,
			ev.Key() == tcell.KeyBackspace,
			ev.Key() == tcell.KeyBackspace2,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'x':
			if b.hasPointer {
				b.report(b.pathfinder.ClearCell(b.pointer))
			}
		}

	case *tcell.EventMouse:
		c, ok := b.cellAt(ev.Position())
		if !ok {
			return true
		}
		b.pointer, b.hasPointer = c, true

		// Mouse editing is disabled once a search has run
		if b.pathfinder.FoundPath() {
			return true
		}
		switch buttons := ev.Buttons(); {
		case buttons&tcell.Button1 != 0:
			b.report(b.pathfinder.Select(c))
		case buttons&tcell.Button2 != 0:
			b.report(b.pathfinder.Block(c))
		}
	}
	return true
}

func (b *board) search() {
	res, err := b.pathfinder.FindPath()
	switch {
	case errors.Is(err, gridastar.ErrNoPath):
		b.status = fmt.Sprintf("no path (%d expanded) - Esc to reset", res.ExpandedNodes)
	case err != nil:
		b.status = err.Error()
	default:
		b.status = fmt.Sprintf("cost %.3f, %d cells, %d expanded - Esc to reset",
			res.TotalCost, len(res.Path), res.ExpandedNodes)
	}
}

func (b *board) report(err error) {
	if err != nil {
		b.status = err.Error()
	}
}

// cellColor mirrors the render priority: endpoints, path, walls, visited,
// touched, empty.
func (b *board) cellColor(c gridastar.Coord) tcell.Color {
	if start, ok := b.pathfinder.Start(); ok && start == c {
		return colorStart
	}
	if target, ok := b.pathfinder.Target(); ok && target == c {
		return colorTarget
	}
	view, ok := b.pathfinder.Node(c)
	switch {
	case !ok:
		return colorEmpty
	case view.PathPart:
		return colorPath
	case !view.Passable:
		return colorBlocked
	case view.Visited:
		return colorVisited
	default:
		return colorTouched
	}
}

func (b *board) draw(screen tcell.Screen) {
	screen.Clear()
	for x := 0; x < b.pathfinder.Rows(); x++ {
		for y := 0; y < b.pathfinder.Columns(); y++ {
			style := tcell.StyleDefault.Background(b.cellColor(gridastar.Coord{X: x, Y: y}))
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range []rune(b.status) {
		screen.SetContent(i, b.pathfinder.Columns(), r, nil, statusStyle)
	}
	screen.Show()
}
