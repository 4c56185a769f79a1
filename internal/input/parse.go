package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// Batch size for yielding observations
	batchSize = 4096

	// Buffer size for reading
	readBufferSize = 1024 * 1024
)

// Observation is one weighted input value.
type Observation struct {
	Value  float64
	Weight float64
}

// Callback is called for each batch of observations.  The batch is
// reused after the callback returns.
type Callback func(batch []Observation) error

// Stats summarizes one parse.
type Stats struct {
	Parsed  int64 // Observations passed to the callback
	Skipped int64 // Malformed lines
	Header  bool  // First line was skipped as a header
}

// ParseFile reads value[,weight] lines from path.
func ParseFile(path string, callback Callback) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Parse(file, callback)
}

// Parse reads value[,weight] lines from r and calls callback with
// batches of observations.  A missing weight means 1.  An unparsable
// first line is treated as a header; later malformed lines are
// counted in Stats.Skipped.
func Parse(r io.Reader, callback Callback) (Stats, error) {
	reader := bufio.NewReaderSize(r, readBufferSize)
	batch := make([]Observation, 0, batchSize)

	var stats Stats
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("read line: %w", err)
		}
		eof := err != nil

		// Process line if non-empty (even on EOF with partial line)
		if line = strings.TrimSpace(line); line != "" {
			obs, parseErr := parseLine(line)
			switch {
			case parseErr == nil:
				batch = append(batch, obs)
				stats.Parsed++
			case first:
				stats.Header = true
			default:
				stats.Skipped++
			}
			first = false

			if len(batch) >= batchSize {
				if cbErr := callback(batch); cbErr != nil {
					return stats, cbErr
				}
				batch = batch[:0]
			}
		}

		if eof {
			break
		}
	}

	if len(batch) > 0 {
		if cbErr := callback(batch); cbErr != nil {
			return stats, cbErr
		}
	}
	return stats, nil
}

// parseLine parses "value" or "value,weight".
func parseLine(line string) (Observation, error) {
	fields := strings.Split(line, ",")
	if len(fields) > 2 {
		return Observation{}, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Observation{}, fmt.Errorf("parse value: %w", err)
	}

	weight := 1.0
	if len(fields) == 2 {
		weight, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return Observation{}, fmt.Errorf("parse weight: %w", err)
		}
	}

	return Observation{Value: value, Weight: weight}, nil
}
