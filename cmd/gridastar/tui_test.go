package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar"
)

func newTestBoard(t *testing.T, rows, columns int, cut bool) *board {
	t.Helper()
	p, err := gridastar.New(rows, columns, gridastar.WithCutCorners(cut))
	require.NoError(t, err)
	return &board{pathfinder: p}
}

func click(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x*cellWidth, y, buttons, tcell.ModNone)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestBoard_EditAndSearch(t *testing.T) {
	b := newTestBoard(t, 5, 5, false)

	assert.True(t, b.handle(click(0, 0, tcell.Button1)))
	assert.True(t, b.handle(click(4, 0, tcell.Button1)))
	for y := 0; y < 4; y++ {
		assert.True(t, b.handle(click(2, y, tcell.Button2)))
	}

	start, ok := b.pathfinder.Start()
	require.True(t, ok)
	assert.Equal(t, gridastar.Coord{X: 0, Y: 0}, start)
	assert.Equal(t, colorBlocked, b.cellColor(gridastar.Coord{X: 2, Y: 1}))
	assert.Equal(t, colorStart, b.cellColor(gridastar.Coord{X: 0, Y: 0}))
	assert.Equal(t, colorTarget, b.cellColor(gridastar.Coord{X: 4, Y: 0}))
	assert.Equal(t, colorEmpty, b.cellColor(gridastar.Coord{X: 3, Y: 3}))

	assert.True(t, b.handle(key(tcell.KeyRune, ' ')))
	assert.Equal(t, gridastar.Found, b.pathfinder.Outcome())
	assert.Contains(t, b.status, "cost 12.000")
	assert.Equal(t, colorPath, b.cellColor(gridastar.Coord{X: 2, Y: 4}))

	// Mouse edits are ignored once a search has run
	assert.True(t, b.handle(click(3, 3, tcell.Button2)))
	_, ok = b.pathfinder.Node(gridastar.Coord{X: 3, Y: 3})
	assert.False(t, ok)

	assert.True(t, b.handle(key(tcell.KeyEscape, 0)))
	assert.False(t, b.pathfinder.FoundPath())
	assert.Equal(t, colorEmpty, b.cellColor(gridastar.Coord{X: 0, Y: 0}))
}

func TestBoard_DeleteUnderPointer(t *testing.T) {
	b := newTestBoard(t, 4, 4, true)
	b.handle(click(1, 1, tcell.Button1))
	b.handle(click(2, 2, tcell.Button1))
	b.handle(key(tcell.KeyRune, ' '))
	require.True(t, b.pathfinder.FoundPath())

	// Pointer moves over the target without buttons, then Delete clears it
	b.handle(click(2, 2, tcell.ButtonNone))
	b.handle(key(tcell.KeyDelete, 0))
	_, ok := b.pathfinder.Target()
	assert.False(t, ok)
	_, ok = b.pathfinder.Node(gridastar.Coord{X: 2, Y: 2})
	assert.False(t, ok)
}

func TestBoard_UnreachableStatus(t *testing.T) {
	b := newTestBoard(t, 3, 1, false)
	b.handle(click(1, 0, tcell.Button2))
	b.handle(click(0, 0, tcell.Button1))
	b.handle(click(2, 0, tcell.Button1))
	b.handle(key(tcell.KeyRune, ' '))

	assert.Equal(t, gridastar.Unreachable, b.pathfinder.Outcome())
	assert.Contains(t, b.status, "no path")
	assert.Equal(t, colorBlocked, b.cellColor(gridastar.Coord{X: 1, Y: 0}))
}

func TestBoard_OutsideGridIgnored(t *testing.T) {
	b := newTestBoard(t, 3, 3, false)
	assert.True(t, b.handle(click(7, 1, tcell.Button1)))
	assert.True(t, b.handle(click(1, 5, tcell.Button1)))
	_, ok := b.pathfinder.Start()
	assert.False(t, ok)
	assert.False(t, b.hasPointer)
}

func TestBoard_Quit(t *testing.T) {
	b := newTestBoard(t, 3, 3, false)
	assert.False(t, b.handle(key(tcell.KeyRune, 'q')))
	assert.False(t, b.handle(key(tcell.KeyCtrlC, 0)))
}
