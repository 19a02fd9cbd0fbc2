// Copyright 2025 go-ordercheck Authors
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
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ordercheck/batch"
	"github.com/ajroetker/go-ordercheck/order"
	"github.com/ajroetker/go-ordercheck/seq"
)

var (
	benchSuite   string
	benchWorkers int
	benchReps    int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the order checkers against a workload suite",
	Long: `Bench builds the sequences described by a YAML suite file and times
every strategy against each of them through the concurrent verifier.

Without --suite a built-in set of patterns is used. A suite file looks
like:

  name: smoke
  seed: 7
  cases:
    - name: reversed-small
      pattern: reversed
      size: 64
    - name: random-window
      pattern: random
      size: 256
      start: 16
      last: 240

Patterns: sorted, reversed, random, saw, single_swap, all_equal.`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchSuite, "suite", "",
		"Suite YAML file (default: built-in patterns)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0,
		"Worker goroutines (0 = GOMAXPROCS)")
	benchCmd.Flags().IntVar(&benchReps, "reps", 100,
		"Repetitions per case and strategy")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) {
	suite := DefaultSuite()
	if benchSuite != "" {
		var err error
		suite, err = LoadSuite(benchSuite)
		if err != nil {
			slog.Error("loading suite failed", "error", err)
			os.Exit(exitError)
		}
	}
	if benchReps < 1 {
		benchReps = 1
	}

	v, err := batch.New[float64](benchWorkers)
	if err != nil {
		slog.Error("starting verifier pool failed", "error", err)
		os.Exit(exitError)
	}
	defer v.Close()

	fmt.Printf("goos: %s\n", runtime.GOOS)
	fmt.Printf("goarch: %s\n", runtime.GOARCH)
	fmt.Printf("cpu: %s\n", cpuFeatures())
	fmt.Printf("workers: %d\n", v.Workers())
	fmt.Printf("suite: %s (seed %d)\n\n", suite.Name, suite.Seed)

	ctx := cmd.Context()
	cmp := order.Natural[float64]()
	rnd := rand.New(rand.NewSource(suite.Seed))

	for _, cs := range suite.Cases {
		s := seq.Slice[float64](cs.Build(rnd))
		for _, st := range order.Strategies() {
			jobs := make([]batch.Job[float64], benchReps)
			for i := range jobs {
				jobs[i] = batch.Job[float64]{
					Seq:      s,
					Cmp:      cmp,
					Start:    cs.Start,
					Last:     cs.Last,
					Strategy: st,
				}
			}

			began := time.Now()
			results := v.Run(ctx, jobs)
			perOp := time.Since(began) / time.Duration(len(results))

			fmt.Printf("%-24s %-9s %8d elems  sorted=%-5v %12v/op\n",
				cs.Name, st, cs.Size, results[0], perOp)
		}
	}
}
