package analyzer

import "CarbonSentinel/internal/model"

// MonthlyVolumes sums traded volume per calendar month. Each bucket is keyed
// by the last trading date occurring in that month; since the series is
// sorted, one scan produces the buckets in chronological order.
func MonthlyVolumes(s model.Series) []model.MonthVolume {
	var out []model.MonthVolume
	for _, p := range s.Points {
		y, m, _ := p.Date.Date()
		if n := len(out); n > 0 {
			ly, lm, _ := out[n-1].MonthEnd.Date()
			if ly == y && lm == m {
				out[n-1].Volume += p.Volume
				out[n-1].MonthEnd = p.Date
				continue
			}
		}
		out = append(out, model.MonthVolume{MonthEnd: p.Date, Volume: p.Volume})
	}
	return out
}
