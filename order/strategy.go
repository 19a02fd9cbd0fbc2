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

package order

import (
	"fmt"

	"github.com/ajroetker/go-ordercheck/seq"
)

// Strategy selects one of the independently implemented sortedness checks.
type Strategy int

const (
	// Linear scans adjacent pairs front to back.
	Linear Strategy = iota
	// Cocktail scans adjacent pairs from both ends at once.
	Cocktail
	// Divided splits at the midpoint and confirms each half with symmetric
	// inward partition checks. Weaker than adjacency; see the package doc.
	Divided
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case Cocktail:
		return "cocktail"
	case Divided:
		return "divided"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a textual strategy name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "cocktail":
		return Cocktail, nil
	case "divided":
		return Divided, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Strategies lists every implemented strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Linear, Cocktail, Divided}
}

// IsSorted dispatches the check for [start, last) to the named strategy.
// Unknown strategies fail closed.
func IsSorted[T any](st Strategy, s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	switch st {
	case Linear:
		return IsSortedLinearRange(s, cmp, start, last)
	case Cocktail:
		return IsSortedCocktailRange(s, cmp, start, last)
	case Divided:
		return IsSortedDividedRange(s, cmp, start, last)
	default:
		return false
	}
}
