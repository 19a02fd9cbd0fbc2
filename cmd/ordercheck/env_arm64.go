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

//go:build arm64

package main

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// cpuFeatures lists the detected ARM64 vector extensions for the bench
// report header. ASIMD (NEON) is part of the ARMv8-A baseline, so it
// is effectively always present.
func cpuFeatures() string {
	var feats []string
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "asimd")
	}
	if cpu.ARM64.HasSVE {
		feats = append(feats, "sve")
	}
	if len(feats) == 0 {
		return "baseline"
	}
	return strings.Join(feats, ",")
}
