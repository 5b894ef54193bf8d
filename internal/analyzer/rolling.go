package analyzer

import (
	"fmt"

	"CarbonSentinel/internal/model"
)

// Rolling computes the trailing mean of closing prices over the given window.
// The first window-1 positions carry no value. Each mean is summed directly
// over its window so results match a naive reference exactly.
func Rolling(s model.Series, window int) (*model.RollingMean, error) {
	if window <= 0 {
		return nil, fmt.Errorf("rolling window %d: %w", window, ErrInvalidWindow)
	}
	closes := s.Closes()
	n := len(closes)
	var values []float64
	if n >= window {
		values = make([]float64, 0, n-window+1)
		for i := window - 1; i < n; i++ {
			sum := 0.0
			for j := i - window + 1; j <= i; j++ {
				sum += closes[j]
			}
			values = append(values, sum/float64(window))
		}
	}
	return model.NewRollingMean(window, n, values), nil
}
