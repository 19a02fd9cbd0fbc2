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

package seq

// NonEmpty reports whether s is non-nil and holds at least one element.
func NonEmpty[T any](s Sequence[T]) bool {
	return s != nil && s.Len() > 0
}

// InRange reports whether v lies within [lo, hi], bounds included.
func InRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// ValidRange reports whether [start, last) is a well-formed sub-extent of s:
// s is non-empty and 0 <= start <= last <= s.Len(). Every checker and sorter
// entry point funnels through this predicate, so all of them accept and
// reject exactly the same inputs.
func ValidRange[T any](s Sequence[T], start, last int) bool {
	return NonEmpty(s) && InRange(start, 0, last) && InRange(last, start, s.Len())
}
