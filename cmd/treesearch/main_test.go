package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve(t *testing.T) {
	t.Run("breadth first takes the fewest hops", func(t *testing.T) {
		out, err := execute(t, "solve", "testdata/route.yaml")
		require.NoError(t, err)

		assert.Contains(t, out, "Problem:  route")
		assert.Contains(t, out, "Frontier: bfs")
		assert.Contains(t, out, "Outcome:  solved")
		assert.Contains(t, out, "Depth:    2")
		assert.Contains(t, out, "Cost:     8")
		assert.Contains(t, out, "highway-on")
		assert.Contains(t, out, "highway-off")
		assert.Contains(t, out, "Stats:    iterations=")
	})

	t.Run("uniform cost takes the cheapest route", func(t *testing.T) {
		out, err := execute(t, "solve", "testdata/route.yaml", "--frontier", "ucs")
		require.NoError(t, err)

		assert.Contains(t, out, "Frontier: ucs")
		assert.Contains(t, out, "Depth:    3")
		assert.Contains(t, out, "Cost:     3")
		assert.Contains(t, out, "side-street")
		assert.NotContains(t, out, "highway-off")
	})

	t.Run("config file selects the frontier", func(t *testing.T) {
		out, err := execute(t, "solve", "testdata/route.yaml", "--config", "testdata/ucs.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "Frontier: ucs")
		assert.Contains(t, out, "Cost:     3")
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		out, err := execute(t, "solve", "testdata/route.yaml", "--config", "testdata/ucs.yaml", "--frontier", "bfs")
		require.NoError(t, err)
		assert.Contains(t, out, "Frontier: bfs")
		assert.Contains(t, out, "Cost:     8")
	})

	t.Run("step budget cancels an endless search", func(t *testing.T) {
		out, err := execute(t, "solve", "testdata/island.yaml", "--max-steps", "50")
		require.NoError(t, err)
		assert.Contains(t, out, "Outcome:  cancelled")
		assert.NotContains(t, out, "Depth:")
	})

	t.Run("unknown frontier", func(t *testing.T) {
		_, err := execute(t, "solve", "testdata/route.yaml", "--frontier", "best-first")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "best-first")
	})

	t.Run("invalid config file", func(t *testing.T) {
		_, err := execute(t, "solve", "testdata/route.yaml", "--config", "testdata/badfrontier.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frontier")
	})

	t.Run("missing problem file", func(t *testing.T) {
		_, err := execute(t, "solve", "testdata/missing.yaml")
		require.Error(t, err)
	})

	t.Run("requires a problem file", func(t *testing.T) {
		_, err := execute(t, "solve")
		require.Error(t, err)
	})
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "testdata/route.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Problem: route")
	for _, name := range []string{"bfs", "dfs", "ucs"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "highway-on, highway-off")
	assert.Contains(t, out, "lane, river-road, side-street")
}

func TestCompareCancelledRuns(t *testing.T) {
	out, err := execute(t, "compare", "testdata/island.yaml", "--config", "testdata/ucs.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled")
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "testdata/route.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "State Space: route")
	assert.Contains(t, out, "  * home (Initial)")
	assert.Contains(t, out, "  - office (Goal)")
}

func TestLogFlagsAreValidated(t *testing.T) {
	_, err := execute(t, "show", "testdata/route.yaml", "--log-level", "loud")
	require.Error(t, err)

	_, err = execute(t, "show", "testdata/route.yaml", "--log-format", "xml")
	require.Error(t, err)
}
