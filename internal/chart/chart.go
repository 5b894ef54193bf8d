// Package chart renders the four-panel analysis figure as a PNG.
package chart

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"CarbonSentinel/internal/model"
)

const dpi = 300

var (
	closeColor  = color.RGBA{R: 0x00, G: 0x00, B: 0x8B, A: 0xFF} // dark blue
	shortColor  = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF} // orange
	longColor   = color.RGBA{R: 0xD6, G: 0x28, B: 0x28, A: 0xFF} // red
	yearlyColor = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	histColor   = color.RGBA{R: 0x06, G: 0xA7, B: 0x7D, A: 0xFF}
	volumeColor = color.RGBA{R: 0xD9, G: 0x03, B: 0x68, A: 0xFF}
)

// Renderer draws the analysis figure to a PNG file: price with rolling means,
// yearly average bars, close-price distribution, and monthly volume bars on
// one tiled canvas.
type Renderer struct {
	Path string
	Bins int
}

func (r *Renderer) Name() string { return "chart " + r.Path }

// Emit renders all four panels and writes the file. It never modifies the
// series or the analysis.
func (r *Renderer) Emit(s model.Series, a *model.Analysis) error {
	pricePanel, err := pricePanel(s, a)
	if err != nil {
		return fmt.Errorf("price panel: %w", err)
	}
	yearlyPanel, err := yearlyPanel(a)
	if err != nil {
		return fmt.Errorf("yearly panel: %w", err)
	}
	histPanel, err := histogramPanel(s, a, r.Bins)
	if err != nil {
		return fmt.Errorf("histogram panel: %w", err)
	}
	volumePanel, err := volumePanel(a)
	if err != nil {
		return fmt.Errorf("volume panel: %w", err)
	}

	plots := [][]*plot.Plot{
		{pricePanel, yearlyPanel},
		{histPanel, volumePanel},
	}

	img := vgimg.NewWith(vgimg.UseWH(16*vg.Inch, 11*vg.Inch), vgimg.UseDPI(dpi))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 6, PadY: vg.Millimeter * 6,
		PadTop: vg.Millimeter * 6, PadBottom: vg.Millimeter * 6,
		PadLeft: vg.Millimeter * 6, PadRight: vg.Millimeter * 6,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create chart file %s: %w", r.Path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write chart %s: %w", r.Path, err)
	}
	return nil
}

func pricePanel(s model.Series, a *model.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Price Trend with Moving Averages"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price (EUR/ton)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Add(plotter.NewGrid())

	closeLine, err := plotter.NewLine(closeXYs(s))
	if err != nil {
		return nil, err
	}
	closeLine.LineStyle.Width = vg.Points(1.5)
	closeLine.LineStyle.Color = closeColor
	p.Add(closeLine)
	p.Legend.Add("Close", closeLine)

	overlays := []struct {
		rm    *model.RollingMean
		color color.RGBA
	}{
		{a.ShortMA, shortColor},
		{a.LongMA, longColor},
	}
	for _, o := range overlays {
		xys := rollingXYs(s, o.rm)
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = o.color
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%d-day MA", o.rm.Window), line)
	}
	p.Legend.Top = true
	return p, nil
}

func yearlyPanel(a *model.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Average Price by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Average Price (EUR/ton)"

	vals := make(plotter.Values, len(a.Yearly))
	labels := make([]string, len(a.Yearly))
	for i, y := range a.Yearly {
		vals[i] = y.Mean
		labels[i] = fmt.Sprintf("%d", y.Year)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = yearlyColor
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

func histogramPanel(s model.Series, a *model.Analysis, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Price Distribution"
	p.X.Label.Text = "Price (EUR/ton)"
	p.Y.Label.Text = "Frequency (Days)"

	h, err := plotter.NewHist(plotter.Values(s.Closes()), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = histColor
	p.Add(h)

	// Vertical marker at the overall mean, spanning the tallest bin.
	maxWeight := 0.0
	for _, b := range h.Bins {
		if b.Weight > maxWeight {
			maxWeight = b.Weight
		}
	}
	mean := a.Summary.Mean
	marker, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: maxWeight}})
	if err != nil {
		return nil, err
	}
	marker.LineStyle.Width = vg.Points(2)
	marker.LineStyle.Color = longColor
	marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("Average: %.2f", mean), marker)
	p.Legend.Top = true
	return p, nil
}

func volumePanel(a *model.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Monthly Trading Volume"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Volume"

	vals := make(plotter.Values, len(a.MonthlyVolume))
	labels := make([]string, len(a.MonthlyVolume))
	for i, mv := range a.MonthlyVolume {
		vals[i] = mv.Volume
		// Label January only, so a multi-year axis reads as year marks.
		if mv.MonthEnd.Month() == 1 || i == 0 {
			labels[i] = mv.MonthEnd.Format("2006-01")
		}
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(8))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = volumeColor
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

func closeXYs(s model.Series) plotter.XYs {
	xys := make(plotter.XYs, s.Len())
	for i, pt := range s.Points {
		xys[i] = plotter.XY{X: float64(pt.Date.Unix()), Y: pt.Close}
	}
	return xys
}

func rollingXYs(s model.Series, rm *model.RollingMean) plotter.XYs {
	var xys plotter.XYs
	for i, pt := range s.Points {
		if v, ok := rm.At(i); ok {
			xys = append(xys, plotter.XY{X: float64(pt.Date.Unix()), Y: v})
		}
	}
	return xys
}
