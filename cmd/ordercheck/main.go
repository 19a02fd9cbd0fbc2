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

// Command ordercheck verifies and randomly sorts numeric sequences.
//
// Usage:
//
//	ordercheck check 1 2 3 4 5
//	ordercheck check --file numbers.txt --strategy divided
//	ordercheck sort --seed 42 -- 5 3 6 1 46
//	ordercheck bench --suite suite.yaml --workers 8
//
// check exits 0 when the sequence is sorted and 1 when it is not.
// sort exits 2 when no sorted arrangement is found before --timeout.
// Negative numbers need a "--" separator so they are not read as flags.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ordercheck",
	Short: "Verify and randomly sort numeric sequences",
	Long: `ordercheck checks whether sequences of numbers are in non-decreasing
order using one of three traversal strategies, and can rearrange
unsorted sequences with a randomized shuffle-until-sorted sort.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// configureLogging installs the process-wide slog handler. Diagnostics
// go to stderr so stdout stays reserved for verdicts and sorted output.
func configureLogging() {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
