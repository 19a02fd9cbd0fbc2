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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/ajroetker/go-ordercheck/seq"
)

// Exit codes reported by the subcommands.
const (
	exitOK       = 0 // sequence sorted, or sort finished
	exitUnsorted = 1 // sequence not sorted
	exitError    = 2 // bad input, bad configuration, or deadline hit
)

// readValues gathers the numbers a subcommand operates on, in priority
// order: explicit arguments, --file, then stdin.
func readValues(args []string, path string) ([]float64, error) {
	var fields []string
	switch {
	case len(args) > 0:
		fields = splitNumbers(strings.Join(args, " "))
	case path != "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		fields = splitNumbers(string(raw))
	default:
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		fields = splitNumbers(string(raw))
	}
	if len(fields) == 0 {
		return nil, errors.New("no input values")
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		values[i] = v
	}
	return values, nil
}

func splitNumbers(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// parseRange interprets "start:last" as a half-open window over n
// elements. An empty spec selects the whole sequence.
func parseRange(spec string, n int) (start, last int, err error) {
	if spec == "" {
		return 0, n, nil
	}
	head, tail, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: expected start:last", spec)
	}
	start, err = strconv.Atoi(head)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", head, err)
	}
	last, err = strconv.Atoi(tail)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", tail, err)
	}
	if start < 0 || start > last || last > n {
		return 0, 0, fmt.Errorf("range [%d:%d) does not fit a sequence of %d elements", start, last, n)
	}
	return start, last, nil
}

// formatValues renders a sequence the way it was read: space separated.
func formatValues(s seq.Sequence[float64]) string {
	parts := make([]string, s.Len())
	for i := range parts {
		parts[i] = strconv.FormatFloat(s.At(i), 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// exitVerdict prints the verdict and exits with the matching code.
func exitVerdict(sorted bool) {
	if sorted {
		fmt.Println("sorted")
		os.Exit(exitOK)
	}
	fmt.Println("not sorted")
	os.Exit(exitUnsorted)
}
