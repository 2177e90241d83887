// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/ajroetker/go-qsort/qsort/contrib/bench"
	"github.com/ajroetker/go-qsort/qsort/contrib/dataset"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qsortbench",
		Short:         "Compare sequential and parallel quicksort and Monte Carlo π",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSortCmd(), newPiCmd(), newInfoCmd())
	return root
}

func newSortCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var shape string
	var seed uint64

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Time qsort.Sequential against qsort.Parallel on the same input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Shape = dataset.Shape(shape)
			if seed != 0 {
				cfg.Seed = seed
			}
			report, err := bench.RunSort(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			writeSortReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	shapes := lo.Map(dataset.Shapes(), func(s dataset.Shape, _ int) string { return string(s) })
	flags := cmd.Flags()
	flags.IntVar(&cfg.Size, "size", cfg.Size, "Number of values to sort")
	flags.IntVar(&cfg.Cutoff, "cutoff", cfg.Cutoff, "Ranges smaller than this are sorted without spawning tasks")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker pool size (capped at the usable CPU count)")
	flags.Uint64Var(&seed, "seed", 0, "Input seed (0 = derive from the clock)")
	flags.StringVar(&shape, "shape", string(dataset.ShapeRandom), "Input shape ("+strings.Join(shapes, ",")+")")
	flags.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of timed runs per sorter")
	flags.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check that both outputs are sorted and identical")
	return cmd
}

func newPiCmd() *cobra.Command {
	cfg := bench.DefaultPiConfig()
	var seed uint64

	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Time sequential against parallel Monte Carlo estimation of π",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed != 0 {
				cfg.Seed = seed
			}
			report, err := bench.RunPi(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			writePiReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&cfg.Samples, "samples", cfg.Samples, "Number of random points to toss")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent trials")
	flags.Uint64Var(&seed, "seed", 0, "Generator seed (0 = derive from the clock)")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the CPU description and usable worker count",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "CPU: %s\n", qsort.CurrentName())
			fmt.Fprintf(w, "Max workers: %d\n", qsort.MaxWorkers())
			fmt.Fprintf(w, "Default cutoff: %d\n", bench.DefaultConfig().Cutoff)
		},
	}
}

func writeSortReport(w io.Writer, r bench.SortReport) {
	cfg := r.Config
	fmt.Fprintf(w, "Sorting %d %s values (cutoff %d, %d workers, %s)\n\n",
		cfg.Size, cfg.Shape, cfg.Cutoff, r.Workers, r.CPU)

	fmt.Fprintf(w, "Timing sequential...\n")
	writeTiming(w, r.Sequential)
	fmt.Fprintf(w, "Timing parallel...\n")
	writeTiming(w, r.Parallel)

	fmt.Fprintf(w, "Speedup: %.2fx (%d tasks spawned, %d run inline)\n",
		r.Speedup(), r.Stats.Spawned, r.Stats.Inlined)
}

func writeTiming(w io.Writer, t bench.Timing) {
	if len(t.Runs) == 1 {
		fmt.Fprintf(w, "Took %f seconds\n\n", t.Best().Seconds())
		return
	}
	fmt.Fprintf(w, "Took %f seconds best, %f mean, %f worst over %d runs\n\n",
		t.Best().Seconds(), t.Mean().Seconds(), t.Worst().Seconds(), len(t.Runs))
}

func writePiReport(w io.Writer, r bench.PiReport) {
	fmt.Fprintf(w, "Timing sequential...\n")
	fmt.Fprintf(w, "Took %f seconds\n\n", r.SequentialTime.Seconds())
	fmt.Fprintf(w, "Timing parallel...\n")
	fmt.Fprintf(w, "Took %f seconds\n\n", r.ParallelTime.Seconds())

	fmt.Fprintf(w, "π = %.10f (sequential, error %.2e)\n", r.Sequential, r.SequentialError())
	fmt.Fprintf(w, "π = %.10f (parallel, error %.2e)\n", r.Parallel, r.ParallelError())
	if r.ParallelTime > 0 {
		fmt.Fprintf(w, "Speedup: %.2fx\n", float64(r.SequentialTime)/float64(r.ParallelTime))
	}
}
