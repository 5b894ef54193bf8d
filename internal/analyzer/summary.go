package analyzer

import (
	"fmt"
	"math"

	"CarbonSentinel/internal/model"
)

// Summarize computes the descriptive statistics over the whole series:
// current (last) close, mean, min, max, standard deviation and the total
// percent change from the first close to the last.
func Summarize(s model.Series) (model.Summary, error) {
	if s.Len() == 0 {
		return model.Summary{}, fmt.Errorf("summary: %w", ErrInsufficientData)
	}
	first := s.First().Close
	if first == 0 {
		return model.Summary{}, fmt.Errorf("summary: first close: %w", ErrZeroBaseline)
	}

	closes := s.Closes()
	min, max := closes[0], closes[0]
	sum := 0.0
	for _, c := range closes {
		sum += c
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	last := s.Last().Close

	return model.Summary{
		Current:        last,
		Mean:           sum / float64(len(closes)),
		Min:            min,
		Max:            max,
		StdDev:         stdDev(closes),
		TotalChangePct: (last - first) / first * 100,
	}, nil
}

// Volatility returns the standard deviation of closing prices over the whole
// series. It is the same computation Summarize stores, so the two never
// disagree.
func Volatility(s model.Series) float64 {
	return stdDev(s.Closes())
}

// stdDev is the sample standard deviation (N-1 denominator), matching the
// default of common analysis tooling. Fewer than two values yield 0.
func stdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
