package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"CarbonSentinel/internal/analyzer"
	"CarbonSentinel/internal/chart"
	"CarbonSentinel/internal/config"
	"CarbonSentinel/internal/loader"
	"CarbonSentinel/internal/model"
	"CarbonSentinel/internal/report"
)

// Emitter consumes the computed analysis and produces one output artifact.
// A failing emitter must not stop the others.
type Emitter interface {
	Name() string
	Emit(s model.Series, a *model.Analysis) error
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] carbon price analyzer starting...")

	// Optional .env for local runs
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load data
	series, err := loader.Load(cfg.Input.Path, cfg.Input.Sheet)
	if err != nil {
		log.Fatalf("[FATAL] load data: %v", err)
	}
	log.Printf("[INFO] loaded %d trading days (%s to %s)", series.Len(),
		series.First().Date.Format("2006-01-02"), series.Last().Date.Format("2006-01-02"))

	// Compute statistics
	a, err := analyzer.Analyze(series, cfg.Windows.Short, cfg.Windows.Long)
	if err != nil {
		log.Fatalf("[FATAL] analyze: %v", err)
	}
	logAnalysis(a)

	// Emit outputs; each failure is a warning and the other emitter still runs
	emitters := []Emitter{
		&chart.Renderer{Path: cfg.Output.ChartPath, Bins: cfg.Chart.HistogramBins},
		&report.Writer{Path: cfg.Output.ReportPath},
	}
	failed := 0
	for _, e := range emitters {
		if err := e.Emit(series, a); err != nil {
			log.Printf("[WARN] %s: %v", e.Name(), err)
			failed++
			continue
		}
		log.Printf("[INFO] wrote %s", e.Name())
	}
	if failed > 0 {
		log.Printf("[WARN] finished with %d of %d outputs missing", failed, len(emitters))
		os.Exit(1)
	}
	log.Println("[INFO] analysis complete")
}

func logAnalysis(a *model.Analysis) {
	s := a.Summary
	log.Printf("[INFO] current %.2f | mean %.2f | min %.2f | max %.2f", s.Current, s.Mean, s.Min, s.Max)
	if v, ok := a.ShortMA.Last(); ok {
		log.Printf("[INFO] %d-day MA %.2f", a.ShortMA.Window, v)
	}
	if v, ok := a.LongMA.Last(); ok {
		log.Printf("[INFO] %d-day MA %.2f", a.LongMA.Window, v)
	}
	log.Printf("[INFO] volatility (std dev) %.2f", s.StdDev)
	for _, y := range a.Yearly {
		log.Printf("[INFO] %d average %.2f", y.Year, y.Mean)
	}
	for _, c := range a.YearChanges {
		log.Printf("[INFO] %d to %d: %+.1f%%", c.FromYear, c.ToYear, c.Pct)
	}
	log.Printf("[INFO] trend %s, momentum %s (total change %+.2f%%)", a.Trend, a.Momentum, s.TotalChangePct)
}
