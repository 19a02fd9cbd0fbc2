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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ordercheck/bogo"
	"github.com/ajroetker/go-ordercheck/order"
	"github.com/ajroetker/go-ordercheck/seq"
	"github.com/ajroetker/go-ordercheck/shuffle"
)

var (
	sortFile    string
	sortRange   string
	sortSeed    int64
	sortTimeout time.Duration
)

var sortCmd = &cobra.Command{
	Use:   "sort [NUMBERS...]",
	Short: "Rearrange a sequence with the randomized shuffle sort",
	Long: `Sort rearranges numbers into non-decreasing order by repeatedly
shuffling the unsorted remainder until order emerges. Progress is made
one position at a time: once the front of the window is confirmed in
place the shuffle never touches it again.

Expected running time grows factorially with the window size, so keep
--timeout set for anything beyond a couple dozen elements. Run with
--log-level debug to see scan and shuffle counts.

Examples:
  ordercheck sort 5 3 6 1 46
  ordercheck sort --seed 42 --range 1:5 -- 9 5 3 4 7 0
  ordercheck sort --timeout 5s --file numbers.txt`,
	Args: cobra.ArbitraryArgs,
	Run:  runSort,
}

func init() {
	sortCmd.Flags().StringVar(&sortFile, "file", "",
		"Read numbers from this file instead of the arguments")
	sortCmd.Flags().StringVar(&sortRange, "range", "",
		"Half-open start:last window to sort (default: whole sequence)")
	sortCmd.Flags().Int64Var(&sortSeed, "seed", 0,
		"Shuffle seed (0 = derive from the clock)")
	sortCmd.Flags().DurationVar(&sortTimeout, "timeout", time.Minute,
		"Give up after this long (0 = run forever)")

	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) {
	values, err := readValues(args, sortFile)
	if err != nil {
		slog.Error("reading input failed", "error", err)
		os.Exit(exitError)
	}

	s := seq.Slice[float64](values)
	start, last, err := parseRange(sortRange, s.Len())
	if err != nil {
		slog.Error("bad range", "error", err)
		os.Exit(exitError)
	}

	opts := []bogo.Option{bogo.WithLogger(slog.Default())}
	if sortSeed != 0 {
		opts = append(opts, bogo.WithShuffler(shuffle.New(sortSeed)))
	}
	sorter := bogo.New[float64](opts...)

	// The sorter itself never gives up, so the deadline lives out here.
	done := make(chan struct{})
	go func() {
		sorter.SortRange(s, order.Natural[float64](), start, last)
		close(done)
	}()

	if sortTimeout > 0 {
		select {
		case <-done:
		case <-time.After(sortTimeout):
			slog.Error("no sorted arrangement found before the deadline",
				"timeout", sortTimeout, "window", last-start)
			os.Exit(exitError)
		}
	} else {
		<-done
	}

	fmt.Println(formatValues(s))
}
