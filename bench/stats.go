// Package bench provides the timing harness and comparison reporting for the
// NN-Meta demo driver.
//
// The harness is a collaborator of the core, not part of it: the core exposes
// pure operations and records no timing of its own. Run repeatedly invokes a
// zero-argument callable and records elapsed wall time per call.
package bench

import (
	"math"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Stats collects per-iteration wall times, in microseconds, for one
// benchmarked operation.
type Stats struct {
	name  string
	times []float64
}

// Run invokes fn warmup times untimed, then iterations times with per-call
// timing, rendering a progress bar while it works.
func Run(name string, fn func(), iterations, warmup int) *Stats {
	for i := 0; i < warmup; i++ {
		fn()
	}

	bar := progressbar.NewOptions(iterations,
		progressbar.OptionSetDescription(name),
		progressbar.OptionClearOnFinish(),
	)

	s := &Stats{name: name, times: make([]float64, 0, iterations)}
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		s.times = append(s.times, float64(elapsed.Nanoseconds())/1e3)
		_ = bar.Add(1)
	}
	return s
}

// Name returns the benchmark's name.
func (s *Stats) Name() string {
	return s.name
}

// Iterations returns the number of timed iterations recorded.
func (s *Stats) Iterations() int {
	return len(s.times)
}

// Mean returns the mean iteration time in microseconds.
func (s *Stats) Mean() float64 {
	if len(s.times) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range s.times {
		sum += t
	}
	return sum / float64(len(s.times))
}

// Median returns the median iteration time in microseconds.
func (s *Stats) Median() float64 {
	if len(s.times) == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.times...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// StdDev returns the population standard deviation in microseconds.
func (s *Stats) StdDev() float64 {
	if len(s.times) == 0 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, t := range s.times {
		diff := t - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s.times)))
}

// Min returns the fastest iteration time in microseconds.
func (s *Stats) Min() float64 {
	if len(s.times) == 0 {
		return 0
	}
	min := s.times[0]
	for _, t := range s.times[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

// Max returns the slowest iteration time in microseconds.
func (s *Stats) Max() float64 {
	if len(s.times) == 0 {
		return 0
	}
	max := s.times[0]
	for _, t := range s.times[1:] {
		if t > max {
			max = t
		}
	}
	return max
}

// Result converts the collected statistics into a comparison-table row.
func (s *Stats) Result(operation, framework string) Result {
	return Result{
		Operation:  operation,
		Framework:  framework,
		MeanUS:     s.Mean(),
		MedianUS:   s.Median(),
		StdDevUS:   s.StdDev(),
		Iterations: s.Iterations(),
	}
}
