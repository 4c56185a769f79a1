package output

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// SampleRow represents a single row in the output parquet file
type SampleRow struct {
	Value float64 `parquet:"value"`
}

// WriteParquet writes sampled values to a parquet file
func WriteParquet(values []float64, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[SampleRow](file)

	rows := make([]SampleRow, len(values))
	for i, v := range values {
		rows[i] = SampleRow{Value: v}
	}

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return file.Close()
}

// ReadParquet reads back values written by WriteParquet
func ReadParquet(path string) ([]float64, error) {
	rows, err := parquet.ReadFile[SampleRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}

	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}
	return values, nil
}
