// internal/bench/stats.go
package bench

import "math"

// Mean returns the arithmetic mean of samples, or 0 for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// PopulationStdDev returns the population standard deviation of samples
// (sum of squared deviations divided by N, not N-1).
func PopulationStdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := Mean(samples)
	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(samples)))
}

// ThroughputMBps converts a payload size and mean duration into decimal
// megabytes per second. Non-positive durations yield 0 rather than Inf.
func ThroughputMBps(sizeBytes int, meanMs float64) float64 {
	if sizeBytes <= 0 || meanMs <= 0 {
		return 0
	}
	return (float64(sizeBytes) / 1e6) / (meanMs / 1000.0)
}
