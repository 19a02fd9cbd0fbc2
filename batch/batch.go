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

// Package batch fans many independent sortedness checks out over a worker
// pool. The checks themselves stay single-threaded, synchronous, and
// read-only; batch adds concurrency strictly between jobs, never inside one.
//
// Spans are emitted through the OpenTelemetry API only. Without an SDK
// installed by the application they are no-ops.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajroetker/go-ordercheck/order"
	"github.com/ajroetker/go-ordercheck/seq"
)

const tracerName = "ordercheck/batch"

// Job describes one sortedness check over [Start, Last) of Seq. Invalid
// jobs are legal and simply report false, like any direct checker call.
type Job[T any] struct {
	Seq      seq.Sequence[T]
	Cmp      order.Comparator[T]
	Start    int
	Last     int
	Strategy order.Strategy
}

// FullJob builds a Job covering all of s.
func FullJob[T any](st order.Strategy, s seq.Sequence[T], cmp order.Comparator[T]) Job[T] {
	last := 0
	if s != nil {
		last = s.Len()
	}
	return Job[T]{Seq: s, Cmp: cmp, Start: 0, Last: last, Strategy: st}
}

// Verifier evaluates batches of jobs on a shared goroutine pool. Sequences
// referenced by concurrent jobs must not be mutated during a run; the jobs
// only read.
type Verifier[T any] struct {
	pool *ants.Pool
}

// New returns a Verifier with its own pool of worker goroutines.
// workers <= 0 selects GOMAXPROCS.
func New[T any](workers int) (*Verifier[T], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("batch: create pool: %w", err)
	}
	return &Verifier[T]{pool: pool}, nil
}

// Close releases the pool. The Verifier is unusable afterwards.
func (v *Verifier[T]) Close() {
	v.pool.Release()
}

// Workers reports the capacity of the underlying pool.
func (v *Verifier[T]) Workers() int {
	return v.pool.Cap()
}

// Run evaluates all jobs and returns their verdicts in job order. A job that
// never ran, because ctx was already canceled or the pool rejected it,
// reports false, keeping the fail-closed convention. Jobs already submitted
// always run to completion; an individual check is not cancellable.
func (v *Verifier[T]) Run(ctx context.Context, jobs []Job[T]) []bool {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.Verifier.Run",
		trace.WithAttributes(
			attribute.Int("jobs", len(jobs)),
			attribute.Int("workers", v.pool.Cap()),
		),
	)
	defer span.End()

	results := make([]bool, len(jobs))
	var wg sync.WaitGroup
	failed := false
	for i := range jobs {
		if ctx.Err() != nil {
			span.SetStatus(codes.Error, "canceled before all jobs were submitted")
			failed = true
			break
		}

		idx, job := i, jobs[i]
		wg.Add(1)
		if err := v.pool.Submit(func() {
			defer wg.Done()
			results[idx] = order.IsSorted(job.Strategy, job.Seq, job.Cmp, job.Start, job.Last)
		}); err != nil {
			wg.Done()
			span.SetStatus(codes.Error, err.Error())
			failed = true
			break
		}
	}
	wg.Wait()

	if !failed {
		span.SetStatus(codes.Ok, "all jobs evaluated")
	}
	return results
}

// Consensus holds the verdict of every strategy over one range.
type Consensus struct {
	Linear   bool
	Cocktail bool
	Divided  bool
}

// Sorted is the authoritative verdict, the linear strategy's.
func (c Consensus) Sorted() bool { return c.Linear }

// Agree reports whether the linear and cocktail strategies returned the
// same verdict. They must on every input; disagreement indicates a broken
// build, not an interesting sequence.
func (c Consensus) Agree() bool { return c.Linear == c.Cocktail }

// Consensus runs all three strategies concurrently over [start, last) of s.
func (v *Verifier[T]) Consensus(ctx context.Context, s seq.Sequence[T], cmp order.Comparator[T], start, last int) Consensus {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.Verifier.Consensus",
		trace.WithAttributes(
			attribute.Int("start", start),
			attribute.Int("last", last),
		),
	)
	defer span.End()

	strategies := order.Strategies()
	jobs := make([]Job[T], 0, len(strategies))
	for _, st := range strategies {
		jobs = append(jobs, Job[T]{Seq: s, Cmp: cmp, Start: start, Last: last, Strategy: st})
	}

	res := v.Run(ctx, jobs)
	c := Consensus{Linear: res[0], Cocktail: res[1], Divided: res[2]}
	span.SetAttributes(
		attribute.Bool("sorted", c.Sorted()),
		attribute.Bool("agree", c.Agree()),
	)
	return c
}
