package model

import "time"

// Summary is the snapshot of descriptive statistics over the whole series.
type Summary struct {
	Current        float64
	Mean           float64
	Min            float64
	Max            float64
	StdDev         float64 // sample standard deviation, N-1 denominator
	TotalChangePct float64 // percent change from first close to last close
}

// RollingMean is a trailing mean aligned to a Series. The first Window-1
// positions carry no value; At reports absence explicitly instead of using a
// sentinel float.
type RollingMean struct {
	Window int
	length int
	values []float64 // values[0] is the mean ending at series index Window-1
}

// NewRollingMean wraps the defined window means. Pass an empty values slice
// when the series is shorter than the window.
func NewRollingMean(window, seriesLen int, values []float64) *RollingMean {
	return &RollingMean{Window: window, length: seriesLen, values: values}
}

// At returns the mean ending at series index i, or false where it is undefined.
func (r *RollingMean) At(i int) (float64, bool) {
	j := i - r.Window + 1
	if j < 0 || i >= r.length || j >= len(r.values) {
		return 0, false
	}
	return r.values[j], true
}

// Last returns the mean at the final series position.
func (r *RollingMean) Last() (float64, bool) {
	return r.At(r.length - 1)
}

// Len is the length of the series the means align to.
func (r *RollingMean) Len() int { return r.length }

// YearlyAverage is the mean closing price of one calendar year.
type YearlyAverage struct {
	Year int
	Mean float64
}

// YearChange is the percent change between two consecutive present years.
type YearChange struct {
	FromYear int
	ToYear   int
	Pct      float64
}

// MonthVolume is the summed volume of one calendar month, keyed by the last
// trading date occurring in that month.
type MonthVolume struct {
	MonthEnd time.Time
	Volume   float64
}

// Extrema holds the highest and lowest closes with the date each was first
// recorded.
type Extrema struct {
	MaxPrice float64
	MaxDate  time.Time
	MinPrice float64
	MinDate  time.Time
}

// Trend is the overall price direction from start to end of the series.
type Trend int

const (
	TrendStable Trend = iota
	TrendUpward
	TrendDownward
)

func (t Trend) String() string {
	switch t {
	case TrendUpward:
		return "UPWARD"
	case TrendDownward:
		return "DOWNWARD"
	default:
		return "STABLE"
	}
}

// Momentum is the short-vs-long moving average relation at the latest point.
type Momentum int

const (
	MomentumBearish Momentum = iota
	MomentumBullish
)

func (m Momentum) String() string {
	if m == MomentumBullish {
		return "BULLISH"
	}
	return "BEARISH"
}

// Analysis is the computed-state snapshot the chart and report stages consume.
// It is derived from a Series and never written back into it.
type Analysis struct {
	Summary       Summary
	ShortMA       *RollingMean
	LongMA        *RollingMean
	Yearly        []YearlyAverage
	YearChanges   []YearChange
	MonthlyVolume []MonthVolume
	Extrema       Extrema
	Trend         Trend
	Momentum      Momentum
}
