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

import "github.com/emirpasic/gods/lists/arraylist"

// List adapts a gods ArrayList to the Sequence contract. Elements are
// dynamically typed, so callers pair it with a comparator over any values;
// the gods utils comparators (utils.IntComparator and friends) convert
// directly.
type List struct {
	inner *arraylist.List
}

var _ Sequence[any] = (*List)(nil)

// NewList wraps l. The list stays owned by the caller and is mutated in
// place by Set.
func NewList(l *arraylist.List) *List {
	return &List{inner: l}
}

// FromValues builds a fresh ArrayList-backed sequence holding vs.
func FromValues(vs ...any) *List {
	return &List{inner: arraylist.New(vs...)}
}

func (l *List) Len() int {
	if l == nil || l.inner == nil {
		return 0
	}
	return l.inner.Size()
}

func (l *List) At(i int) any {
	v, _ := l.inner.Get(i)
	return v
}

func (l *List) Set(i int, v any) {
	l.inner.Set(i, v)
}

// Unwrap returns the underlying gods list.
func (l *List) Unwrap() *arraylist.List {
	return l.inner
}
