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

// Package bogo implements the randomized sorter: an in-place sort built from
// nothing but a linear verification scan and an external uniform shuffle.
//
// The sorter keeps a ratchet index pos. Each iteration scans [pos, last)
// against a running best value; a clean scan certifies the suffix and
// advances pos by one, while a violation shuffles the whole suffix
// [pos, last) uniformly at random and rescans from the same pos. The
// confirmed prefix [start, pos) is never touched again, so the loop
// terminates with probability 1 and the range is sorted by construction when
// pos reaches last.
//
// Expected running time is exponential in the unsorted suffix length. That
// is the point: this is a worst-case baseline for exercising the checkers,
// not a production sort. No deadline is enforced internally; callers who
// need a bound must impose one around the call, as the ordercheck CLI does.
package bogo

import (
	"log/slog"

	"github.com/ajroetker/go-ordercheck/order"
	"github.com/ajroetker/go-ordercheck/seq"
	"github.com/ajroetker/go-ordercheck/shuffle"
)

// RangeShuffler is the external permutation primitive consumed by the
// sorter. A *shuffle.Shuffler satisfies it; tests substitute deterministic
// implementations.
type RangeShuffler interface {
	Range(data shuffle.Interface, start, last int)
}

// settings holds the injectable collaborators. They are element-type
// independent, which keeps Option non-generic.
type settings struct {
	shuffler RangeShuffler
	log      *slog.Logger
}

// Option configures a Sorter.
type Option func(*settings)

// WithShuffler replaces the shuffle primitive. A nil shuffler is ignored.
func WithShuffler(sh RangeShuffler) Option {
	return func(s *settings) {
		if sh != nil {
			s.shuffler = sh
		}
	}
}

// WithLogger attaches a logger. Scan and shuffle counts are reported at
// debug level once per completed sort.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// Sorter sorts sequences in place by alternating suffix verification with
// uniform shuffles of the still-unsorted suffix.
type Sorter[T any] struct {
	cfg settings
}

// New returns a Sorter backed by the shared time-seeded shuffler unless
// WithShuffler substitutes another one.
func New[T any](opts ...Option) *Sorter[T] {
	cfg := settings{shuffler: shuffle.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sorter[T]{cfg: cfg}
}

// Sort sorts all of s in place under cmp.
func (b *Sorter[T]) Sort(s seq.Sequence[T], cmp order.Comparator[T]) {
	if s == nil {
		return
	}
	b.SortRange(s, cmp, 0, s.Len())
}

// SortRange sorts [start, last) of s in place under cmp. Invalid arguments
// are a silent no-op, through the same gate the checkers use. An
// already-sorted range triggers no shuffles at all.
func (b *Sorter[T]) SortRange(s seq.Sequence[T], cmp order.Comparator[T], start, last int) {
	if !order.Checkable(s, cmp, start, last) {
		return
	}

	view := seq.Swappable(s)
	scans, shuffles := 0, 0
	for pos := start; pos < last; {
		scans++
		if suffixInOrder(s, cmp, pos, last) {
			pos++
			continue
		}
		b.cfg.shuffler.Range(view, pos, last)
		shuffles++
	}

	if b.cfg.log != nil {
		b.cfg.log.Debug("randomized sort finished",
			"start", start, "last", last, "scans", scans, "shuffles", shuffles)
	}
}

// suffixInOrder scans [pos, last) against a running best that starts at pos
// and advances with every element that does not sort before it. A clean scan
// means the suffix is momentarily non-decreasing.
func suffixInOrder[T any](s seq.Sequence[T], cmp order.Comparator[T], pos, last int) bool {
	best := s.At(pos)
	for i := pos + 1; i < last; i++ {
		v := s.At(i)
		if cmp(v, best) < 0 {
			return false
		}
		best = v
	}
	return true
}

// Sort sorts all of s in place using a freshly configured default Sorter.
func Sort[T any](s seq.Sequence[T], cmp order.Comparator[T]) {
	New[T]().Sort(s, cmp)
}

// SortRange sorts [start, last) of s in place using a freshly configured
// default Sorter.
func SortRange[T any](s seq.Sequence[T], cmp order.Comparator[T], start, last int) {
	New[T]().SortRange(s, cmp, start, last)
}
