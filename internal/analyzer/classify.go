package analyzer

import (
	"fmt"

	"CarbonSentinel/internal/model"
)

// ClassifyTrend maps the total percent change to a trend direction. The zero
// boundary is exact: only a series ending precisely where it started reads as
// stable.
func ClassifyTrend(totalChangePct float64) model.Trend {
	switch {
	case totalChangePct > 0:
		return model.TrendUpward
	case totalChangePct < 0:
		return model.TrendDownward
	default:
		return model.TrendStable
	}
}

// ClassifyMomentum compares the latest short and long rolling means. Bullish
// only when the short mean is strictly above the long one; equality counts as
// bearish.
func ClassifyMomentum(short, long *model.RollingMean) (model.Momentum, error) {
	sv, ok := short.Last()
	if !ok {
		return model.MomentumBearish, fmt.Errorf("%d-day mean undefined at last point: %w", short.Window, ErrInsufficientData)
	}
	lv, ok := long.Last()
	if !ok {
		return model.MomentumBearish, fmt.Errorf("%d-day mean undefined at last point: %w", long.Window, ErrInsufficientData)
	}
	if sv > lv {
		return model.MomentumBullish, nil
	}
	return model.MomentumBearish, nil
}
