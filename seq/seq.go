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

// Sequence is an indexable, mutable, finite container of T.
type Sequence[T any] interface {
	// Len reports the number of elements.
	Len() int

	// At returns the element at index i. i must be in [0, Len()).
	At(i int) T

	// Set replaces the element at index i. i must be in [0, Len()).
	Set(i int, v T)
}

// Slice adapts a plain Go slice to the Sequence contract. The adapter shares
// the slice's backing array, so Set is visible to the original slice.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Swap exchanges the elements at indices i and j of s.
func Swap[T any](s Sequence[T], i, j int) {
	tmp := s.At(i)
	s.Set(i, s.At(j))
	s.Set(j, tmp)
}

// swapView is the reorder-only adapter returned by Swappable.
type swapView[T any] struct {
	seq Sequence[T]
}

func (v swapView[T]) Len() int      { return v.seq.Len() }
func (v swapView[T]) Swap(i, j int) { Swap(v.seq, i, j) }

// Swappable exposes the swap-only view of s consumed by shuffle primitives,
// which reorder elements without ever comparing them.
func Swappable[T any](s Sequence[T]) interface {
	Len() int
	Swap(i, j int)
} {
	return swapView[T]{seq: s}
}
