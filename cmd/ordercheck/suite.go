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

package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Input patterns a bench case can ask for.
const (
	patternSorted     = "sorted"
	patternReversed   = "reversed"
	patternRandom     = "random"
	patternSaw        = "saw"
	patternSingleSwap = "single_swap"
	patternAllEqual   = "all_equal"
)

// Suite describes a bench workload loaded from YAML.
type Suite struct {
	Name  string `yaml:"name" validate:"required"`
	Seed  int64  `yaml:"seed"`
	Cases []Case `yaml:"cases" validate:"required,min=1,dive"`
}

// Case is one sequence to build and check. Start and Last select a
// half-open window; a zero Last means the whole sequence.
type Case struct {
	Name    string `yaml:"name" validate:"required"`
	Pattern string `yaml:"pattern" validate:"required,oneof=sorted reversed random saw single_swap all_equal"`
	Size    int    `yaml:"size" validate:"required,min=1"`
	Start   int    `yaml:"start" validate:"gte=0"`
	Last    int    `yaml:"last" validate:"gte=0"`
}

// suiteValidate checks suite structs after YAML decoding.
var suiteValidate *validator.Validate

func init() {
	suiteValidate = validator.New()
}

// LoadSuite reads, decodes, and validates a suite file. Case windows
// are normalized so Last is always set on the returned suite.
func LoadSuite(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	if err := suiteValidate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Last == 0 {
			c.Last = c.Size
		}
		if c.Start > c.Last || c.Last > c.Size {
			return nil, fmt.Errorf("case %q: window [%d:%d) does not fit %d elements",
				c.Name, c.Start, c.Last, c.Size)
		}
	}
	return &s, nil
}

// DefaultSuite is the workload used when no --suite file is given.
func DefaultSuite() *Suite {
	return &Suite{
		Name: "default",
		Seed: 1,
		Cases: []Case{
			{Name: "ascending", Pattern: patternSorted, Size: 1024, Last: 1024},
			{Name: "reversed", Pattern: patternReversed, Size: 1024, Last: 1024},
			{Name: "random", Pattern: patternRandom, Size: 1024, Last: 1024},
			{Name: "random-large", Pattern: patternRandom, Size: 65536, Last: 65536},
			{Name: "saw", Pattern: patternSaw, Size: 1024, Last: 1024},
			{Name: "nearly-sorted", Pattern: patternSingleSwap, Size: 1024, Last: 1024},
			{Name: "all-equal", Pattern: patternAllEqual, Size: 1024, Last: 1024},
			{Name: "random-window", Pattern: patternRandom, Size: 4096, Start: 512, Last: 3584},
		},
	}
}

// Build materializes the case's sequence. Patterns that need
// randomness draw from rnd, so case order matters for reproducibility.
func (c *Case) Build(rnd *rand.Rand) []float64 {
	vals := make([]float64, c.Size)
	switch c.Pattern {
	case patternSorted:
		for i := range vals {
			vals[i] = float64(i)
		}
	case patternReversed:
		for i := range vals {
			vals[i] = float64(c.Size - i)
		}
	case patternRandom:
		for i := range vals {
			vals[i] = rnd.Float64()
		}
	case patternSaw:
		// Ascending runs of 32, then a drop back to zero.
		for i := range vals {
			vals[i] = float64(i % 32)
		}
	case patternSingleSwap:
		for i := range vals {
			vals[i] = float64(i)
		}
		if c.Size >= 2 {
			i := rnd.Intn(c.Size - 1)
			vals[i], vals[i+1] = vals[i+1], vals[i]
		}
	case patternAllEqual:
		for i := range vals {
			vals[i] = 42
		}
	}
	return vals
}
