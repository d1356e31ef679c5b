package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func TestSolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walled.txt")
	require.NoError(t, os.WriteFile(path, []byte("S.#..\n..#..\n..#.T\n.....\n"), 0o644))

	out, err := runApp(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cost 8.000")
	assert.True(t, strings.HasPrefix(out, "S"), "map is printed first:\n%s", out)
}

func TestSolve_StdinWithCutCorners(t *testing.T) {
	out, err := runApp(t, "S....\n.....\n....T\n", "--cut-corners", "solve", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "cost 4.828")
}

func TestSolve_NoPath(t *testing.T) {
	out, err := runApp(t, "S#T\n", "solve", "-")
	require.Error(t, err)
	assert.Contains(t, out, "no path")
}

func TestSolve_BadArgs(t *testing.T) {
	_, err := runApp(t, "", "solve")
	assert.ErrorContains(t, err, "exactly one map")
}

func TestBench(t *testing.T) {
	out, err := runApp(t, "", "--rows", "12", "--columns", "9", "bench", "--runs", "6", "--workers", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "runs=6")
}

func TestBench_PositionalConfig(t *testing.T) {
	out, err := runApp(t, "", "bench", "--runs", "2", "8", "8", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "runs=2")

	_, err = runApp(t, "", "bench", "--runs", "2", "8", "8")
	assert.ErrorContains(t, err, "ROWS COLUMNS CUT_CORNERS")

	_, err = runApp(t, "", "bench", "--runs", "2", "0", "8", "false")
	assert.ErrorContains(t, err, "at least 1x1")
}

func TestBench_SingleCellGrid(t *testing.T) {
	_, err := runApp(t, "", "bench", "--runs", "2", "1", "1", "false")
	assert.ErrorContains(t, err, "cannot hold distinct start and target")

	out, err := runApp(t, "", "bench", "--runs", "2", "--clusters", "0", "1", "2", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "runs=2 found=2")
}
