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

// IsSortedDivided reports whether all of s passes the divided check under
// cmp.
func IsSortedDivided[T any](s seq.Sequence[T], cmp Comparator[T]) bool {
	if s == nil {
		return false
	}
	return IsSortedDividedRange(s, cmp, 0, s.Len())
}

// IsSortedDividedRange splits [start, last) at its midpoint and confirms
// each half with a recursive partition check. For even-length ranges the two
// middle elements are compared directly first, since no partition pair spans
// the split.
//
// The partition check is weaker than adjacency; inversions hugging an
// odd-length split can escape it. See the package doc for the exact
// guarantee before relying on this strategy.
func IsSortedDividedRange[T any](s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	if !Checkable(s, cmp, start, last) {
		return false
	}
	n := last - start
	if n <= 1 {
		return true
	}

	mid := start + n/2
	if n%2 == 0 && cmp(s.At(mid-1), s.At(mid)) > 0 {
		return false
	}
	return partitionSorted(s, cmp, start, mid) && partitionSorted(s, cmp, mid, last)
}

// partitionSorted sweeps [start, last) symmetrically inward from both ends
// (start vs last-1, start+1 vs last-2, ...) and then recurses into the two
// halves. Recursion bottoms out at single elements; every level strictly
// shrinks, so depth is logarithmic.
func partitionSorted[T any](s seq.Sequence[T], cmp Comparator[T], start, last int) bool {
	n := last - start
	if n <= 1 {
		return true
	}

	for low, high := start, last-1; low < high; low, high = low+1, high-1 {
		if cmp(s.At(low), s.At(high)) > 0 {
			return false
		}
	}

	mid := start + n/2
	return partitionSorted(s, cmp, start, mid) && partitionSorted(s, cmp, mid, last)
}
