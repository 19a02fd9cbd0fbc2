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

import "github.com/ajroetker/go-ordercheck/seq"

// Checkable is the shared acceptance gate: a non-nil comparator plus a valid
// range over a non-empty sequence. Every checker and the randomized sorter
// consult this exact predicate, so all of them accept and reject the same
// inputs. A rejected call reports "not sorted" or does nothing; it never
// panics.
func Checkable[T any](s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	return cmp != nil && seq.ValidRange(s, start, last)
}

// IsSortedLinear reports whether all of s is non-decreasing under cmp.
func IsSortedLinear[T any](s seq.Sequence[T], cmp Comparator[T]) bool {
	if s == nil {
		return false
	}
	return IsSortedLinearRange(s, cmp, 0, s.Len())
}

// IsSortedLinearRange scans adjacent pairs of [start, last) front to back,
// short-circuiting on the first pair that compares out of order. Ranges of
// fewer than two elements are trivially sorted.
func IsSortedLinearRange[T any](s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	if !Checkable(s, cmp, start, last) {
		return false
	}

	for i := start + 1; i < last; i++ {
		if cmp(s.At(i-1), s.At(i)) > 0 {
			return false
		}
	}
	return true
}

// IsSortedCocktail reports whether all of s is non-decreasing under cmp,
// scanning from both ends at once.
func IsSortedCocktail[T any](s seq.Sequence[T], cmp Comparator[T]) bool {
	if s == nil {
		return false
	}
	return IsSortedCocktailRange(s, cmp, 0, s.Len())
}

// IsSortedCocktailRange walks two cursors toward each other for
// ceil((last-start)/2) iterations, comparing the low cursor against its
// right neighbor and the high cursor against its left neighbor. It visits
// the same adjacent pairs as the linear scan, possibly twice near the
// middle, and returns the same verdict on every input.
func IsSortedCocktailRange[T any](s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	if !Checkable(s, cmp, start, last) {
		return false
	}
	if last-start <= 1 {
		return true
	}

	low, high := start, last-1
	for iters := (last - start + 1) / 2; iters > 0; iters-- {
		if cmp(s.At(low), s.At(low+1)) > 0 {
			return false
		}
		if cmp(s.At(high-1), s.At(high)) > 0 {
			return false
		}
		low++
		high--
	}
	return true
}
