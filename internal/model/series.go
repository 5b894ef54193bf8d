package model

import "time"

// PricePoint is one trading day: closing price in EUR per ton and traded volume.
type PricePoint struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// Series holds the loaded price history, sorted ascending by date with no
// duplicate dates. It is never mutated after loading; everything derived from
// it lives in Analysis.
type Series struct {
	Points []PricePoint
}

func (s Series) Len() int { return len(s.Points) }

// First returns the earliest point. Valid only for a non-empty series.
func (s Series) First() PricePoint { return s.Points[0] }

// Last returns the latest point. Valid only for a non-empty series.
func (s Series) Last() PricePoint { return s.Points[len(s.Points)-1] }

// Closes returns the closing prices in date order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}
