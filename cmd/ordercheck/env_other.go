//go:build !amd64 && !arm64

package main

// Architectures without a feature probe report a plain header line.
func cpuFeatures() string {
	return "portable"
}
