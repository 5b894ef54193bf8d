package analyzer

import (
	"fmt"
	"sort"

	"CarbonSentinel/internal/model"
)

// YearlyAverages groups points by calendar year and returns the mean close
// per year in ascending year order.
func YearlyAverages(s model.Series) []model.YearlyAverage {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, p := range s.Points {
		y := p.Date.Year()
		sums[y] += p.Close
		counts[y]++
	}

	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]model.YearlyAverage, 0, len(years))
	for _, y := range years {
		out = append(out, model.YearlyAverage{Year: y, Mean: sums[y] / float64(counts[y])})
	}
	return out
}

// YearOverYearChanges computes the percent change between each consecutive
// pair of years present in the data. A calendar year missing from the data is
// simply absent; the pairs run over present years only. Fewer than two years
// yield an empty result.
func YearOverYearChanges(yearly []model.YearlyAverage) ([]model.YearChange, error) {
	if len(yearly) < 2 {
		return nil, nil
	}
	changes := make([]model.YearChange, 0, len(yearly)-1)
	for i := 1; i < len(yearly); i++ {
		prev, curr := yearly[i-1], yearly[i]
		if prev.Mean == 0 {
			return nil, fmt.Errorf("year %d average: %w", prev.Year, ErrZeroBaseline)
		}
		changes = append(changes, model.YearChange{
			FromYear: prev.Year,
			ToYear:   curr.Year,
			Pct:      (curr.Mean - prev.Mean) / prev.Mean * 100,
		})
	}
	return changes, nil
}
