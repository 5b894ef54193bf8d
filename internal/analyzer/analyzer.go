// Package analyzer derives all statistics from a loaded price series. Every
// function is pure: the series is read-only and results depend only on the
// input, so recomputation always yields identical values.
package analyzer

import (
	"errors"

	"CarbonSentinel/internal/model"
)

var (
	ErrInsufficientData = errors.New("not enough data points")
	ErrInvalidWindow    = errors.New("window must be positive")
	ErrZeroBaseline     = errors.New("baseline price is zero")
)

// Analyze runs the full computation over the series and returns one snapshot
// for the chart and report stages. The momentum comparison needs the long
// window defined at the last point, so the series must hold at least
// longWindow points.
func Analyze(s model.Series, shortWindow, longWindow int) (*model.Analysis, error) {
	summary, err := Summarize(s)
	if err != nil {
		return nil, err
	}
	shortMA, err := Rolling(s, shortWindow)
	if err != nil {
		return nil, err
	}
	longMA, err := Rolling(s, longWindow)
	if err != nil {
		return nil, err
	}
	yearly := YearlyAverages(s)
	changes, err := YearOverYearChanges(yearly)
	if err != nil {
		return nil, err
	}
	momentum, err := ClassifyMomentum(shortMA, longMA)
	if err != nil {
		return nil, err
	}
	ext, err := FindExtrema(s)
	if err != nil {
		return nil, err
	}

	return &model.Analysis{
		Summary:       summary,
		ShortMA:       shortMA,
		LongMA:        longMA,
		Yearly:        yearly,
		YearChanges:   changes,
		MonthlyVolume: MonthlyVolumes(s),
		Extrema:       ext,
		Trend:         ClassifyTrend(summary.TotalChangePct),
		Momentum:      momentum,
	}, nil
}
