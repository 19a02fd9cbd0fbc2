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

// Package shuffle provides an unbiased Fisher-Yates shuffle over any
// collection that exposes length and element swapping. The randomized sorter
// consumes it through the Range form; everything else is convenience.
package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

// Interface is the minimal view a collection must expose to be shuffled.
// It is sort.Interface without Less: shuffling reorders, it never compares.
type Interface interface {
	Len() int
	Swap(i, j int)
}

// Shuffler draws permutations from a seedable random source. Construct with
// New or NewSource; the zero value has no source and is not usable. A
// Shuffler is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Shuffler seeded with seed. Equal seeds produce equal
// permutation streams.
func New(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// NewSource returns a Shuffler drawing from src.
func NewSource(src rand.Source) *Shuffler {
	return &Shuffler{rnd: rand.New(src)}
}

// Shuffle permutes all of data uniformly at random.
func (s *Shuffler) Shuffle(data Interface) {
	if data == nil {
		return
	}
	s.Range(data, 0, data.Len())
}

// Range permutes data[start:last] in place, leaving everything outside the
// half-open range untouched. Invalid ranges and ranges with fewer than two
// elements are no-ops.
func (s *Shuffler) Range(data Interface, start, last int) {
	if data == nil || start < 0 || last > data.Len() || last-start < 2 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := last - 1; i > start; i-- {
		j := start + s.rnd.Intn(i-start+1)
		data.Swap(i, j)
	}
}

var defaultShuffler = New(time.Now().UnixNano())

// Default returns the shared time-seeded Shuffler behind the package-level
// functions.
func Default() *Shuffler {
	return defaultShuffler
}

// Shuffle permutes all of data using the default Shuffler.
func Shuffle(data Interface) {
	defaultShuffler.Shuffle(data)
}

// Range permutes data[start:last] using the default Shuffler.
func Range(data Interface, start, last int) {
	defaultShuffler.Range(data, start, last)
}
