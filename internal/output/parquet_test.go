package output_test

import (
	"path/filepath"
	"testing"

	"github.com/lightstep/reservoir/internal/output"
	"github.com/stretchr/testify/require"
)

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	values := []float64{3, 1e10, -2.5, 0}

	require.NoError(t, output.WriteParquet(values, path))

	got, err := output.ReadParquet(path)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestWriteParquetBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sample.parquet")
	require.Error(t, output.WriteParquet([]float64{1}, path))
}
