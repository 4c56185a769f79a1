package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/lightstep/reservoir/examples/quantile"
	"github.com/lightstep/reservoir/internal/config"
	"github.com/lightstep/reservoir/internal/input"
	"github.com/lightstep/reservoir/internal/output"
	"github.com/lightstep/reservoir/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg = config.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wrsample [files...]",
		Short: "Draw a weighted random sample from a stream of values",
		Long: `wrsample reads "value[,weight]" lines from the given files, or stdin,
and keeps a bounded sample in which each value was selected with probability
proportional to its weight. A missing weight counts as 1.

The sample is printed one value per line, or written to a parquet file
with --output.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags
	rootCmd.Flags().IntVarP(&cfg.Capacity, "capacity", "n", cfg.Capacity, "Maximum number of samples")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	rootCmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "Write the sample to this parquet file")
	rootCmd.Flags().Float64SliceVarP(&cfg.Quantiles, "quantiles", "q", nil, "Also estimate these quantiles")
	rootCmd.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Only log errors")

	if err := rootCmd.Execute(); err != nil {
		ui.New(false).LogError("%v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	cfg.Inputs = args

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log := ui.New(cfg.Quiet)
	log.LogInfo("wrsample - %s", cfg.String())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stream, err := quantile.NewStream(cfg.Capacity, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	consume := func(batch []input.Observation) error {
		for _, o := range batch {
			stream.Add(o.Value, o.Weight)
		}
		return nil
	}

	if err := readAll(cmd.InOrStdin(), cfg.Inputs, consume, log); err != nil {
		return err
	}

	samples := stream.Samples()
	log.LogInfo("Sampled %d of %d values", len(samples), stream.Count())

	if len(cfg.Quantiles) > 0 {
		estimates, err := stream.Quantiles(cfg.Quantiles)
		if err != nil {
			return err
		}
		for i, q := range cfg.Quantiles {
			log.LogInfo("q%v = %v", q, estimates[i])
		}
	}

	if cfg.OutputFile != "" {
		if err := output.WriteParquet(samples, cfg.OutputFile); err != nil {
			return fmt.Errorf("write parquet: %w", err)
		}
	} else if err := printSamples(cmd.OutOrStdout(), samples); err != nil {
		return err
	}

	log.LogSuccess("Done in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// readAll parses each input in turn, or stdin when there are none.
func readAll(stdin io.Reader, inputs []string, consume input.Callback, log *ui.Logger) error {
	report := func(name string, stats input.Stats) {
		if stats.Header {
			log.LogInfo("%s: skipped header line", name)
		}
		if stats.Skipped > 0 {
			log.LogWarning("%s: skipped %d malformed lines", name, stats.Skipped)
		}
	}

	if len(inputs) == 0 {
		stats, err := input.Parse(stdin, consume)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		report("stdin", stats)
		return nil
	}

	for _, path := range inputs {
		stats, err := input.ParseFile(path, consume)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		report(path, stats)
	}
	return nil
}

func printSamples(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range samples {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
