package analyzer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"CarbonSentinel/internal/model"
)

func genSeries(n int) model.Series {
	start := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, n)
	price := 80.0
	for i := range points {
		price += float64((i%7)-3) * 0.37
		points[i] = model.PricePoint{
			Date:   start.AddDate(0, 0, i),
			Close:  price,
			Volume: float64(1000 + i*10),
		}
	}
	return model.Series{Points: points}
}

func TestRolling_UndefinedLeadingRegion(t *testing.T) {
	s := genSeries(5)
	rm, err := Rolling(s, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, ok := rm.At(i); ok {
			t.Errorf("index %d: expected undefined before window-1 observations", i)
		}
	}
	for i := 2; i < 5; i++ {
		if _, ok := rm.At(i); !ok {
			t.Errorf("index %d: expected defined value", i)
		}
	}
}

func TestRolling_MatchesNaiveReference(t *testing.T) {
	s := genSeries(40)
	closes := s.Closes()
	for _, window := range []int{1, 7, 30} {
		rm, err := Rolling(s, window)
		if err != nil {
			t.Fatalf("window %d: unexpected error: %v", window, err)
		}
		for i := range closes {
			got, ok := rm.At(i)
			if i < window-1 {
				if ok {
					t.Errorf("window %d index %d: expected undefined", window, i)
				}
				continue
			}
			if !ok {
				t.Fatalf("window %d index %d: expected defined value", window, i)
			}
			sum := 0.0
			for j := i - window + 1; j <= i; j++ {
				sum += closes[j]
			}
			if want := sum / float64(window); got != want {
				t.Errorf("window %d index %d: expected %.12f, got %.12f", window, i, want, got)
			}
		}
	}
}

func TestRolling_InvalidWindow(t *testing.T) {
	s := genSeries(5)
	for _, window := range []int{0, -1} {
		t.Run(fmt.Sprintf("window_%d", window), func(t *testing.T) {
			_, err := Rolling(s, window)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("expected ErrInvalidWindow, got %v", err)
			}
		})
	}
}

func TestRolling_WindowLongerThanSeries(t *testing.T) {
	s := genSeries(4)
	rm, err := Rolling(s, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rm.Last(); ok {
		t.Error("expected no defined value when the series is shorter than the window")
	}
}

func TestRolling_OutOfRangeAccess(t *testing.T) {
	s := genSeries(5)
	rm, err := Rolling(s, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rm.At(-1); ok {
		t.Error("expected undefined for negative index")
	}
	if _, ok := rm.At(5); ok {
		t.Error("expected undefined past the series end")
	}
}
