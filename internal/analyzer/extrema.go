package analyzer

import (
	"fmt"
	"math"

	"CarbonSentinel/internal/model"
)

// FindExtrema returns the highest and lowest closes with the date each was
// first recorded. A tie keeps the earlier date.
func FindExtrema(s model.Series) (model.Extrema, error) {
	if s.Len() == 0 {
		return model.Extrema{}, fmt.Errorf("extrema: %w", ErrInsufficientData)
	}
	ext := model.Extrema{MaxPrice: math.Inf(-1), MinPrice: math.Inf(1)}
	for _, p := range s.Points {
		if p.Close > ext.MaxPrice {
			ext.MaxPrice = p.Close
			ext.MaxDate = p.Date
		}
		if p.Close < ext.MinPrice {
			ext.MinPrice = p.Close
			ext.MinDate = p.Date
		}
	}
	return ext, nil
}
