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
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ordercheck/batch"
	"github.com/ajroetker/go-ordercheck/order"
	"github.com/ajroetker/go-ordercheck/seq"
)

var (
	checkFile     string
	checkRange    string
	checkStrategy string
	checkWorkers  int
)

var checkCmd = &cobra.Command{
	Use:   "check [NUMBERS...]",
	Short: "Report whether a sequence is in non-decreasing order",
	Long: `Check reads numbers from the command line, a file, or stdin and
reports whether they are in non-decreasing order. The verdict is
written to stdout and mirrored in the exit code: 0 when sorted, 1 when
not, 2 on bad input.

Strategies:
  linear    single adjacent-pair scan (the reference answer)
  cocktail  scans both ends toward the middle, same verdicts as linear
  divided   recursive partition check; can report sorted for sequences
            the other two reject
  all       run every strategy concurrently and print each verdict

Examples:
  ordercheck check 1 2 3 4 5
  ordercheck check --strategy divided --range 1:4 -- 1 4 2 3 5
  ordercheck check --file numbers.txt --strategy all
  shuf -i 1-100 | ordercheck check`,
	Args: cobra.ArbitraryArgs,
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "",
		"Read numbers from this file instead of the arguments")
	checkCmd.Flags().StringVar(&checkRange, "range", "",
		"Half-open start:last window to check (default: whole sequence)")
	checkCmd.Flags().StringVar(&checkStrategy, "strategy", "linear",
		"Traversal strategy: linear, cocktail, divided, or all")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0,
		"Worker goroutines for --strategy all (0 = GOMAXPROCS)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	values, err := readValues(args, checkFile)
	if err != nil {
		slog.Error("reading input failed", "error", err)
		os.Exit(exitError)
	}

	s := seq.Slice[float64](values)
	start, last, err := parseRange(checkRange, s.Len())
	if err != nil {
		slog.Error("bad range", "error", err)
		os.Exit(exitError)
	}

	cmp := order.Natural[float64]()

	if checkStrategy == "all" {
		v, err := batch.New[float64](checkWorkers)
		if err != nil {
			slog.Error("starting verifier pool failed", "error", err)
			os.Exit(exitError)
		}
		c := v.Consensus(cmd.Context(), s, cmp, start, last)
		v.Close()

		fmt.Printf("linear    %v\n", c.Linear)
		fmt.Printf("cocktail  %v\n", c.Cocktail)
		fmt.Printf("divided   %v\n", c.Divided)
		if c.Divided != c.Linear {
			slog.Warn("divided verdict diverges from the exact strategies",
				"linear", c.Linear, "divided", c.Divided)
		}
		exitVerdict(c.Sorted())
	}

	st, err := order.ParseStrategy(checkStrategy)
	if err != nil {
		slog.Error("bad strategy", "error", err)
		os.Exit(exitError)
	}
	exitVerdict(order.IsSorted(st, s, cmp, start, last))
}
