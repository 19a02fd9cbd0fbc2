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

import "cmp"

// Comparator reports the relative order of two values: negative when a
// precedes b, zero when they are equal-ordered, positive when a follows b.
// It must be a consistent total preorder over the values it actually sees;
// only the sign of the result is inspected.
type Comparator[T any] func(a, b T) int

// Natural returns the comparator induced by < for any ordered type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Reverse returns a comparator with the opposite order of c. A nil c stays
// nil, so the validation gate still rejects it.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return nil
	}
	return func(a, b T) int { return c(b, a) }
}
