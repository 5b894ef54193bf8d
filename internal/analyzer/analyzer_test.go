package analyzer

import (
	"errors"
	"testing"

	"CarbonSentinel/internal/model"
)

func TestFindExtrema_TieKeepsEarlierDate(t *testing.T) {
	s := mkSeries(
		pt("2022-01-03", 95.0, 1),
		pt("2022-01-04", 70.0, 1),
		pt("2022-01-05", 95.0, 1),
		pt("2022-01-06", 70.0, 1),
	)
	ext, err := FindExtrema(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.MaxPrice != 95.0 || ext.MaxDate.Format("2006-01-02") != "2022-01-03" {
		t.Errorf("max: expected 95.0 on 2022-01-03, got %.2f on %s",
			ext.MaxPrice, ext.MaxDate.Format("2006-01-02"))
	}
	if ext.MinPrice != 70.0 || ext.MinDate.Format("2006-01-02") != "2022-01-04" {
		t.Errorf("min: expected 70.0 on 2022-01-04, got %.2f on %s",
			ext.MinPrice, ext.MinDate.Format("2006-01-02"))
	}
}

func TestFindExtrema_Empty(t *testing.T) {
	_, err := FindExtrema(model.Series{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestMonthlyVolumes_GroupsByMonth(t *testing.T) {
	s := mkSeries(
		pt("2022-01-03", 80.0, 100),
		pt("2022-01-28", 81.0, 250),
		pt("2022-02-01", 82.0, 300),
		pt("2022-04-04", 83.0, 50),
	)
	months := MonthlyVolumes(s)
	if len(months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(months))
	}
	if months[0].Volume != 350 || months[0].MonthEnd.Format("2006-01-02") != "2022-01-28" {
		t.Errorf("january: expected 350 ending 2022-01-28, got %.0f ending %s",
			months[0].Volume, months[0].MonthEnd.Format("2006-01-02"))
	}
	if months[1].Volume != 300 {
		t.Errorf("february: expected 300, got %.0f", months[1].Volume)
	}
	if months[2].Volume != 50 || months[2].MonthEnd.Format("2006-01-02") != "2022-04-04" {
		t.Errorf("april: expected 50 ending 2022-04-04, got %.0f ending %s",
			months[2].Volume, months[2].MonthEnd.Format("2006-01-02"))
	}
	for i := 1; i < len(months); i++ {
		if !months[i-1].MonthEnd.Before(months[i].MonthEnd) {
			t.Error("expected chronological month buckets")
		}
	}
}

func TestAnalyze_FullSnapshot(t *testing.T) {
	s := mkSeries(
		pt("2022-01-03", 80.0, 100),
		pt("2022-01-04", 82.0, 150),
		pt("2023-01-03", 90.0, 200),
	)
	a, err := Analyze(s, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Summary.Current != 90.0 {
		t.Errorf("current: expected 90.0, got %.4f", a.Summary.Current)
	}
	if a.Trend != model.TrendUpward {
		t.Errorf("expected UPWARD trend, got %s", a.Trend)
	}
	// short mean (82+90)/2=86 above long mean 84
	if a.Momentum != model.MomentumBullish {
		t.Errorf("expected BULLISH momentum, got %s", a.Momentum)
	}
	if len(a.Yearly) != 2 || len(a.YearChanges) != 1 {
		t.Errorf("expected 2 years and 1 change, got %d and %d", len(a.Yearly), len(a.YearChanges))
	}
	if len(a.MonthlyVolume) != 2 {
		t.Errorf("expected 2 month buckets, got %d", len(a.MonthlyVolume))
	}
	if a.Extrema.MaxPrice != 90.0 || a.Extrema.MinPrice != 80.0 {
		t.Errorf("extrema: expected [80, 90], got [%.2f, %.2f]", a.Extrema.MinPrice, a.Extrema.MaxPrice)
	}
}

func TestAnalyze_SeriesShorterThanLongWindow(t *testing.T) {
	s := mkSeries(pt("2022-01-03", 80.0, 100), pt("2022-01-04", 82.0, 150))
	_, err := Analyze(s, 2, 5)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyze_InvalidWindow(t *testing.T) {
	s := mkSeries(pt("2022-01-03", 80.0, 100), pt("2022-01-04", 82.0, 150))
	_, err := Analyze(s, 0, 5)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}
