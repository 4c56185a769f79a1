package input_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lightstep/reservoir/internal/input"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, text string) ([]input.Observation, input.Stats) {
	t.Helper()
	var all []input.Observation
	stats, err := input.Parse(strings.NewReader(text), func(batch []input.Observation) error {
		all = append(all, batch...)
		return nil
	})
	require.NoError(t, err)
	return all, stats
}

func TestParse(t *testing.T) {
	obs, stats := collect(t, "value,weight\n1.5,2\n\n 3 , 0.5 \n7\nbogus\n1,2,3\n-4,1e10")

	require.Equal(t, []input.Observation{
		{Value: 1.5, Weight: 2},
		{Value: 3, Weight: 0.5},
		{Value: 7, Weight: 1},
		{Value: -4, Weight: 1e10},
	}, obs)
	require.Equal(t, input.Stats{Parsed: 4, Skipped: 2, Header: true}, stats)
}

func TestParseNoHeader(t *testing.T) {
	obs, stats := collect(t, "1\n2\n")
	require.Len(t, obs, 2)
	require.False(t, stats.Header)
	require.Equal(t, int64(0), stats.Skipped)
}

func TestParseBatches(t *testing.T) {
	var b strings.Builder
	const lines = 10000
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "%d,1\n", i)
	}

	batches := 0
	total := 0
	stats, err := input.Parse(strings.NewReader(b.String()), func(batch []input.Observation) error {
		batches++
		total += len(batch)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, lines, total)
	require.Equal(t, int64(lines), stats.Parsed)
	require.Equal(t, 3, batches)
}

func TestParseCallbackError(t *testing.T) {
	stop := errors.New("stop")
	_, err := input.Parse(strings.NewReader("1\n2\n"), func([]input.Observation) error {
		return stop
	})
	require.ErrorIs(t, err, stop)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("5,2\n6,3\n"), 0o644))

	var all []input.Observation
	stats, err := input.ParseFile(path, func(batch []input.Observation) error {
		all = append(all, batch...)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Parsed)
	require.Equal(t, []input.Observation{{Value: 5, Weight: 2}, {Value: 6, Weight: 3}}, all)

	_, err = input.ParseFile(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
}
