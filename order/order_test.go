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
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/utils"

	"github.com/ajroetker/go-ordercheck/seq"
)

func ascending(n int) seq.Slice[int] {
	s := make(seq.Slice[int], n)
	for i := range s {
		s[i] = i
	}
	return s
}

func descending(n int) seq.Slice[int] {
	s := make(seq.Slice[int], n)
	for i := range s {
		s[i] = n - i
	}
	return s
}

// TestIsSortedLinear tests the full-range linear scan
func TestIsSortedLinear(t *testing.T) {
	cmp := Natural[int]()

	tests := []struct {
		name string
		data seq.Slice[int]
		want bool
	}{
		{"empty", seq.Slice[int]{}, false},
		{"single", seq.Slice[int]{42}, true},
		{"sorted", seq.Slice[int]{1, 2, 3, 4, 5}, true},
		{"sorted_with_ties", seq.Slice[int]{1, 1, 2, 2, 3}, true},
		{"all_equal", seq.Slice[int]{7, 7, 7, 7}, true},
		{"unsorted", seq.Slice[int]{1, 3, 2, 4, 5}, false},
		{"reverse", seq.Slice[int]{5, 4, 3, 2, 1}, false},
		{"violation_at_head", seq.Slice[int]{9, 1, 2, 3}, false},
		{"violation_at_tail", seq.Slice[int]{1, 2, 3, 0}, false},
		{"sample", seq.Slice[int]{5, 3, 6, 1, 46}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSortedLinear(tt.data, cmp)
			if got != tt.want {
				t.Errorf("IsSortedLinear(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

// TestIsSortedLinearRange tests explicit sub-range checks
func TestIsSortedLinearRange(t *testing.T) {
	cmp := Natural[int]()
	s := seq.Slice[int]{5, 1, 2, 3, 0}

	tests := []struct {
		name        string
		start, last int
		want        bool
	}{
		{"sorted_window", 1, 4, true},
		{"window_plus_head", 0, 4, false},
		{"window_plus_tail", 1, 5, false},
		{"full", 0, 5, false},
		{"empty_range", 2, 2, true},
		{"singleton_range", 0, 1, true},
		{"inverted_range", 3, 1, false},
		{"out_of_bounds", 0, 6, false},
		{"negative_start", -1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSortedLinearRange(s, cmp, tt.start, tt.last)
			if got != tt.want {
				t.Errorf("IsSortedLinearRange(%v, %d, %d) = %v, want %v", s, tt.start, tt.last, got, tt.want)
			}
		})
	}
}

// TestIsSortedCocktail tests that the bidirectional scan matches the linear
// verdicts on handpicked inputs
func TestIsSortedCocktail(t *testing.T) {
	cmp := Natural[int]()

	tests := []struct {
		name string
		data seq.Slice[int]
		want bool
	}{
		{"empty", seq.Slice[int]{}, false},
		{"single", seq.Slice[int]{3}, true},
		{"pair_sorted", seq.Slice[int]{1, 2}, true},
		{"pair_unsorted", seq.Slice[int]{2, 1}, false},
		{"sorted_odd", seq.Slice[int]{1, 2, 3, 4, 5}, true},
		{"sorted_even", seq.Slice[int]{1, 2, 3, 4}, true},
		{"middle_violation_even", seq.Slice[int]{1, 2, 4, 3, 5, 6}, false},
		{"middle_violation_odd", seq.Slice[int]{1, 3, 2, 4, 5}, false},
		{"reverse", seq.Slice[int]{5, 4, 3, 2, 1}, false},
		{"all_equal", seq.Slice[int]{2, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSortedCocktail(tt.data, cmp)
			if got != tt.want {
				t.Errorf("IsSortedCocktail(%v) = %v, want %v", tt.data, got, tt.want)
			}
			if lin := IsSortedLinear(tt.data, cmp); got != lin {
				t.Errorf("IsSortedCocktail(%v) = %v disagrees with IsSortedLinear = %v", tt.data, got, lin)
			}
		})
	}
}

// TestCocktailMatchesLinearOnAdjacentSwaps plants a single adjacent
// inversion at every position of every size and demands agreement
func TestCocktailMatchesLinearOnAdjacentSwaps(t *testing.T) {
	cmp := Natural[int]()

	for n := 2; n <= 40; n++ {
		for p := 0; p+1 < n; p++ {
			data := ascending(n)
			data[p], data[p+1] = data[p+1], data[p]

			lin := IsSortedLinear(data, cmp)
			coc := IsSortedCocktail(data, cmp)
			if lin || coc {
				t.Fatalf("n=%d swap at %d: linear=%v cocktail=%v, want both false", n, p, lin, coc)
			}
		}
	}
}

// TestCocktailMatchesLinearRandom cross-checks the two scans on randomized
// sequences and ranges, including invalid ranges
func TestCocktailMatchesLinearRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(12345))
	cmp := Natural[int]()

	for trial := 0; trial < 2000; trial++ {
		n := rnd.Intn(24)
		data := make([]int, n)
		for i := range data {
			data[i] = rnd.Intn(8) // small domain, plenty of ties
		}
		if n > 0 && rnd.Intn(3) == 0 {
			slices.Sort(data)
		}
		s := seq.Slice[int](data)

		start := rnd.Intn(n+3) - 1
		last := rnd.Intn(n+3) - 1

		lin := IsSortedLinearRange(s, cmp, start, last)
		coc := IsSortedCocktailRange(s, cmp, start, last)
		if lin != coc {
			t.Fatalf("trial %d: linear=%v cocktail=%v for %v range [%d,%d)", trial, lin, coc, data, start, last)
		}

		// For accepted inputs the verdict must match the stdlib oracle.
		if n > 0 && start >= 0 && start <= last && last <= n {
			want := slices.IsSortedFunc(data[start:last], cmp)
			if lin != want {
				t.Fatalf("trial %d: linear=%v, stdlib oracle=%v for %v range [%d,%d)", trial, lin, want, data, start, last)
			}
		}
	}
}

// TestIsSortedDivided tests the divided check on inputs where it must agree
// with the linear scan
func TestIsSortedDivided(t *testing.T) {
	cmp := Natural[int]()

	tests := []struct {
		name string
		data seq.Slice[int]
		want bool
	}{
		{"empty", seq.Slice[int]{}, false},
		{"single", seq.Slice[int]{9}, true},
		{"pair_sorted", seq.Slice[int]{1, 2}, true},
		{"pair_unsorted", seq.Slice[int]{2, 1}, false},
		{"sorted_even", seq.Slice[int]{1, 2, 3, 4, 5, 6}, true},
		{"sorted_odd", seq.Slice[int]{1, 2, 3, 4, 5}, true},
		{"all_equal", seq.Slice[int]{4, 4, 4, 4, 4}, true},
		{"even_middle_swap", seq.Slice[int]{1, 2, 4, 3, 5, 6}, false},
		{"endpoint_swap", seq.Slice[int]{5, 2, 3, 4, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSortedDivided(tt.data, cmp)
			if got != tt.want {
				t.Errorf("IsSortedDivided(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

// TestDividedAgreesOnSortedAndReversed tests the two input families where
// the divided strategy guarantees agreement with the other scans
func TestDividedAgreesOnSortedAndReversed(t *testing.T) {
	cmp := Natural[int]()

	for n := 1; n <= 33; n++ {
		if !IsSortedDivided(ascending(n), cmp) {
			t.Errorf("IsSortedDivided(ascending %d) = false, want true", n)
		}
	}
	for n := 2; n <= 33; n++ {
		if IsSortedDivided(descending(n), cmp) {
			t.Errorf("IsSortedDivided(descending %d) = true, want false", n)
		}
	}
}

// TestDividedAgreesOnSortedRanges tests random sorted sub-ranges across all
// three strategies
func TestDividedAgreesOnSortedRanges(t *testing.T) {
	rnd := rand.New(rand.NewSource(777))
	cmp := Natural[int]()

	for trial := 0; trial < 1000; trial++ {
		n := 1 + rnd.Intn(30)
		data := make([]int, n)
		v := rnd.Intn(5)
		for i := range data {
			v += rnd.Intn(3) // non-decreasing by construction
			data[i] = v
		}
		s := seq.Slice[int](data)

		start := rnd.Intn(n + 1)
		last := start + rnd.Intn(n+1-start)

		for _, st := range Strategies() {
			if !IsSorted(st, s, cmp, start, last) {
				t.Fatalf("trial %d: %s rejected sorted range [%d,%d) of %v", trial, st, start, last, data)
			}
		}
	}
}

// TestDividedWeakness pins the documented divergence: an inversion hugging
// an odd-length split point is invisible to the partition sweep
func TestDividedWeakness(t *testing.T) {
	cmp := Natural[int]()

	// Sub-range [1,4) holds 4,2,3: the 4>2 inversion straddles the split.
	s := seq.Slice[int]{1, 4, 2, 3, 5}
	if IsSortedLinearRange(s, cmp, 1, 4) {
		t.Error("linear accepted 4,2,3")
	}
	if IsSortedCocktailRange(s, cmp, 1, 4) {
		t.Error("cocktail accepted 4,2,3")
	}
	if !IsSortedDividedRange(s, cmp, 1, 4) {
		t.Error("divided rejected 4,2,3; the documented weakness no longer holds")
	}

	// Same shape over a full range.
	full := seq.Slice[int]{1, 3, 2, 4, 5}
	if IsSortedLinear(full, cmp) {
		t.Error("linear accepted 1,3,2,4,5")
	}
	if !IsSortedDivided(full, cmp) {
		t.Error("divided rejected 1,3,2,4,5; the documented weakness no longer holds")
	}
}

// TestInnerRangeChecks tests the window scenario: a sorted interior window,
// then the same window fully reversed
func TestInnerRangeChecks(t *testing.T) {
	cmp := Natural[int]()

	s := seq.Slice[int]{1, 2, 3, 4, 5}
	for _, st := range Strategies() {
		if !IsSorted(st, s, cmp, 1, 4) {
			t.Errorf("%s rejected sorted window [1,4) of %v", st, s)
		}
	}

	reversed := seq.Slice[int]{1, 4, 3, 2, 5}
	for _, st := range Strategies() {
		if IsSorted(st, reversed, cmp, 1, 4) {
			t.Errorf("%s accepted fully reversed window [1,4) of %v", st, reversed)
		}
	}
}

// TestAllStrategiesRejectInvalid tests the fail-closed gate on every entry
// point
func TestAllStrategiesRejectInvalid(t *testing.T) {
	cmp := Natural[int]()
	sorted := seq.Slice[int]{1, 2, 3}

	if IsSortedLinear[int](nil, cmp) || IsSortedCocktail[int](nil, cmp) || IsSortedDivided[int](nil, cmp) {
		t.Error("nil sequence accepted")
	}
	if IsSortedLinearRange[int](nil, cmp, 0, 0) || IsSortedCocktailRange[int](nil, cmp, 0, 0) || IsSortedDividedRange[int](nil, cmp, 0, 0) {
		t.Error("nil sequence accepted by range form")
	}
	if IsSortedLinear(sorted, nil) || IsSortedCocktail(sorted, nil) || IsSortedDivided(sorted, nil) {
		t.Error("nil comparator accepted")
	}
	if IsSortedLinearRange(sorted, cmp, 2, 1) || IsSortedCocktailRange(sorted, cmp, 2, 1) || IsSortedDividedRange(sorted, cmp, 2, 1) {
		t.Error("inverted range accepted")
	}
	if IsSortedLinearRange(sorted, cmp, 0, 4) || IsSortedCocktailRange(sorted, cmp, 0, 4) || IsSortedDividedRange(sorted, cmp, 0, 4) {
		t.Error("out-of-bounds range accepted")
	}
	if IsSorted(Strategy(99), sorted, cmp, 0, 3) {
		t.Error("unknown strategy accepted")
	}

	if !Checkable(sorted, cmp, 0, 3) {
		t.Error("Checkable rejected a valid call")
	}
	if Checkable(sorted, cmp, 0, 4) || Checkable[int](nil, cmp, 0, 0) || Checkable(sorted, nil, 0, 3) {
		t.Error("Checkable accepted an invalid call")
	}
}

// TestEmptyRangeVersusEmptySequence pins the gate asymmetry: empty ranges
// are sorted, empty sequences are rejected
func TestEmptyRangeVersusEmptySequence(t *testing.T) {
	cmp := Natural[int]()

	nonEmpty := seq.Slice[int]{3, 1, 2}
	for _, st := range Strategies() {
		if !IsSorted(st, nonEmpty, cmp, 1, 1) {
			t.Errorf("%s rejected empty range over non-empty sequence", st)
		}
		if !IsSorted(st, nonEmpty, cmp, 0, 1) {
			t.Errorf("%s rejected singleton range", st)
		}
		if IsSorted(st, seq.Slice[int]{}, cmp, 0, 0) {
			t.Errorf("%s accepted empty sequence", st)
		}
	}
}

// TestIsSortedDispatch tests that the dispatcher routes to the matching
// strategy implementation
func TestIsSortedDispatch(t *testing.T) {
	cmp := Natural[int]()
	s := seq.Slice[int]{1, 4, 2, 3, 5}

	if got, want := IsSorted(Linear, s, cmp, 1, 4), IsSortedLinearRange(s, cmp, 1, 4); got != want {
		t.Errorf("dispatch(Linear) = %v, direct = %v", got, want)
	}
	if got, want := IsSorted(Cocktail, s, cmp, 1, 4), IsSortedCocktailRange(s, cmp, 1, 4); got != want {
		t.Errorf("dispatch(Cocktail) = %v, direct = %v", got, want)
	}
	if got, want := IsSorted(Divided, s, cmp, 1, 4), IsSortedDividedRange(s, cmp, 1, 4); got != want {
		t.Errorf("dispatch(Divided) = %v, direct = %v", got, want)
	}
}

// TestStrategyNames tests String and ParseStrategy round trips
func TestStrategyNames(t *testing.T) {
	for _, st := range Strategies() {
		parsed, err := ParseStrategy(st.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) error: %v", st.String(), err)
		}
		if parsed != st {
			t.Errorf("ParseStrategy(%q) = %v, want %v", st.String(), parsed, st)
		}
	}

	if Strategy(42).String() != "unknown" {
		t.Errorf("Strategy(42).String() = %q, want unknown", Strategy(42).String())
	}
	if _, err := ParseStrategy("bogus"); err == nil {
		t.Error("ParseStrategy(bogus) did not fail")
	}
	if len(Strategies()) != 3 {
		t.Errorf("Strategies() = %v, want three entries", Strategies())
	}
}

// TestComparators tests Natural and Reverse
func TestComparators(t *testing.T) {
	if !IsSortedLinear(seq.Slice[string]{"ant", "bee", "cat"}, Natural[string]()) {
		t.Error("Natural[string] rejected sorted strings")
	}

	desc := seq.Slice[int]{9, 7, 7, 2}
	if IsSortedLinear(desc, Natural[int]()) {
		t.Error("Natural accepted descending data")
	}
	if !IsSortedLinear(desc, Reverse(Natural[int]())) {
		t.Error("Reverse(Natural) rejected descending data")
	}
	if IsSortedLinear(seq.Slice[int]{1, 2}, Reverse(Natural[int]())) {
		t.Error("Reverse(Natural) accepted ascending data")
	}

	// Reverse(nil) stays nil so the gate still rejects it.
	if IsSortedLinear(desc, Reverse[int](nil)) {
		t.Error("Reverse(nil) slipped past the gate")
	}
}

// TestComparatorPanicPropagates tests that a panicking comparator is not
// recovered or wrapped
func TestComparatorPanicPropagates(t *testing.T) {
	defer func() {
		if r := recover(); r != "comparator exploded" {
			t.Errorf("recovered %v, want the comparator's own panic value", r)
		}
	}()

	boom := Comparator[int](func(a, b int) int { panic("comparator exploded") })
	IsSortedLinearRange(seq.Slice[int]{2, 1}, boom, 0, 2)
	t.Error("comparator panic did not propagate")
}

// TestGodsListSequence tests the checkers over a gods-backed sequence with a
// gods comparator
func TestGodsListSequence(t *testing.T) {
	cmp := Comparator[any](utils.IntComparator)

	sorted := seq.FromValues(1, 2, 3, 4)
	for _, st := range Strategies() {
		if !IsSorted[any](st, sorted, cmp, 0, sorted.Len()) {
			t.Errorf("%s rejected sorted gods list", st)
		}
	}

	unsorted := seq.FromValues(3, 1, 2)
	if IsSortedLinear[any](unsorted, cmp) {
		t.Error("linear accepted unsorted gods list")
	}
	if IsSortedCocktail[any](unsorted, cmp) {
		t.Error("cocktail accepted unsorted gods list")
	}
}
