// Package report writes the plain-text analysis document.
package report

import (
	"fmt"
	"os"
	"strings"

	"CarbonSentinel/internal/model"
)

const lineWidth = 60

// Writer emits the report to a UTF-8 text file.
type Writer struct {
	Path string
}

func (w *Writer) Name() string { return "report " + w.Path }

func (w *Writer) Emit(s model.Series, a *model.Analysis) error {
	if err := os.WriteFile(w.Path, []byte(Format(s, a)), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", w.Path, err)
	}
	return nil
}

// Format builds the report text. It only formats values already computed by
// the analyzer; the trend and momentum wording comes from the classified
// enums, never from re-deriving the comparisons here.
func Format(s model.Series, a *model.Analysis) string {
	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	sep := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString("EU ETS CARBON PRICE ANALYSIS REPORT\n")
	b.WriteString("European Emission Trading System\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("EXECUTIVE SUMMARY\n" + sep + "\n")
	fmt.Fprintf(&b, "Analysis Period: %s to %s\n",
		s.First().Date.Format("2006-01-02"), s.Last().Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total Trading Days Analyzed: %d\n\n", s.Len())

	b.WriteString("KEY FINDINGS\n" + sep + "\n")
	fmt.Fprintf(&b, "1. Current Carbon Price: €%.2f per ton\n", a.Summary.Current)
	fmt.Fprintf(&b, "2. Average Price: €%.2f per ton\n", a.Summary.Mean)
	fmt.Fprintf(&b, "3. Price Range: €%.2f - €%.2f\n", a.Summary.Min, a.Summary.Max)
	fmt.Fprintf(&b, "4. Price Volatility (Std Dev): €%.2f\n\n", a.Summary.StdDev)

	b.WriteString("TREND ANALYSIS\n" + sep + "\n")
	fmt.Fprintf(&b, "Overall Trend: %s\n", a.Trend)
	fmt.Fprintf(&b, "Total Price Change: %+.2f%% (from start to end)\n", a.Summary.TotalChangePct)
	if v, ok := a.ShortMA.Last(); ok {
		fmt.Fprintf(&b, "%d-day Moving Average: €%.2f\n", a.ShortMA.Window, v)
	}
	if v, ok := a.LongMA.Last(); ok {
		fmt.Fprintf(&b, "%d-day Moving Average: €%.2f\n", a.LongMA.Window, v)
	}
	b.WriteString("\n")

	b.WriteString("YEARLY COMPARISON\n" + sep + "\n")
	for _, y := range a.Yearly {
		fmt.Fprintf(&b, "%d: €%.2f average\n", y.Year, y.Mean)
	}
	if len(a.YearChanges) > 0 {
		b.WriteString("\nYear-over-Year Changes:\n")
		for _, c := range a.YearChanges {
			fmt.Fprintf(&b, "  %d → %d: %+.1f%%\n", c.FromYear, c.ToYear, c.Pct)
		}
	}
	b.WriteString("\n")

	b.WriteString("MARKET INSIGHTS\n" + sep + "\n")
	if a.Summary.Current > a.Summary.Mean {
		b.WriteString("• Current price is ABOVE the period average, indicating recent price strength\n")
	} else {
		b.WriteString("• Current price is BELOW the period average, indicating recent price weakness\n")
	}
	if a.Momentum == model.MomentumBullish {
		fmt.Fprintf(&b, "• Short-term trend (%d-day MA) is ABOVE long-term trend (%d-day MA)\n",
			a.ShortMA.Window, a.LongMA.Window)
		b.WriteString("  suggesting bullish momentum\n")
	} else {
		fmt.Fprintf(&b, "• Short-term trend (%d-day MA) is BELOW long-term trend (%d-day MA)\n",
			a.ShortMA.Window, a.LongMA.Window)
		b.WriteString("  suggesting bearish momentum\n")
	}
	fmt.Fprintf(&b, "• Highest price recorded: €%.2f on %s\n",
		a.Extrema.MaxPrice, a.Extrema.MaxDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "• Lowest price recorded: €%.2f on %s\n\n",
		a.Extrema.MinPrice, a.Extrema.MinDate.Format("2006-01-02"))

	b.WriteString(rule + "\n")
	b.WriteString("Report generated by Carbon Price Analyzer\n")
	b.WriteString(rule + "\n")
	return b.String()
}
