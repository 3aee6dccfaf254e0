package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const (
	// feedWindow is how many samples the live card keeps.
	feedWindow = 60
	// chartHeight is fixed so an open panel never changes height between
	// samples.
	chartHeight = 8
	legendWidth = 14
)

// feedSample is one synthetic throughput reading.
type feedSample struct {
	At    time.Time
	Info  int
	Warn  int
	Error int
}

func (s feedSample) total() int {
	return s.Info + s.Warn + s.Error
}

// metricsFeed is the sliding sample window behind the live card. It is
// mutated only from the program loop; the card's renderer reads it on the
// same goroutine.
type metricsFeed struct {
	samples []feedSample
	limit   int
}

func newMetricsFeed(limit int) *metricsFeed {
	return &metricsFeed{limit: limit}
}

func (f *metricsFeed) push(s feedSample) {
	f.samples = append(f.samples, s)
	if len(f.samples) > f.limit {
		f.samples = f.samples[len(f.samples)-f.limit:]
	}
}

func (f *metricsFeed) latest() (feedSample, bool) {
	if len(f.samples) == 0 {
		return feedSample{}, false
	}
	return f.samples[len(f.samples)-1], true
}

// chart renders the sample window as a stacked bar chart with a legend
// column and a status row.
func (f *metricsFeed) chart(width int) string {
	chartWidth := width - legendWidth - 2
	if chartWidth < 20 {
		chartWidth = 20
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	maxBars := chartWidth / 2
	samples := f.samples
	if len(samples) > maxBars {
		samples = samples[len(samples)-maxBars:]
	}

	// Pad on the left so fresh samples enter from the right edge.
	for i := len(samples); i < maxBars; i++ {
		bc.Push(barchart.BarData{
			Label:  "",
			Values: []barchart.BarValue{{Name: "EMPTY", Value: 0, Style: infoBarStyle}},
		})
	}

	for _, s := range samples {
		values := make([]barchart.BarValue, 0, 3)
		if s.Info > 0 {
			values = append(values, barchart.BarValue{Name: "INFO", Value: float64(s.Info), Style: infoBarStyle})
		}
		if s.Warn > 0 {
			values = append(values, barchart.BarValue{Name: "WARN", Value: float64(s.Warn), Style: warnBarStyle})
		}
		if s.Error > 0 {
			values = append(values, barchart.BarValue{Name: "ERROR", Value: float64(s.Error), Style: errorBarStyle})
		}
		if len(values) == 0 {
			values = append(values, barchart.BarValue{Name: "EMPTY", Value: 0, Style: infoBarStyle})
		}
		bc.Push(barchart.BarData{Label: "", Values: values})
	}

	bc.Draw()

	chartLines := strings.Split(bc.View(), "\n")
	legendLines := f.legendLines()
	rows := make([]string, 0, chartHeight+1)
	for i := 0; i < chartHeight; i++ {
		var chartLine, legendLine string
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		if i < len(legendLines) {
			legendLine = legendLines[i]
		}
		if pad := chartWidth - lipgloss.Width(chartLine); pad > 0 {
			chartLine += strings.Repeat(" ", pad)
		}
		rows = append(rows, chartLine+"  "+legendLine)
	}
	rows = append(rows, f.statusLine())

	return strings.Join(rows, "\n")
}

func (f *metricsFeed) legendLines() []string {
	latest, ok := f.latest()
	if !ok {
		return nil
	}
	entries := []struct {
		name  string
		count int
		style lipgloss.Style
	}{
		{"ERROR", latest.Error, errorTextStyle},
		{"WARN", latest.Warn, warnTextStyle},
		{"INFO", latest.Info, infoTextStyle},
		{"TOTAL", latest.total(), legendTotalStyle},
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.style.Render(fmt.Sprintf("%-6s%6d", e.name+":", e.count)))
	}
	return lines
}

func (f *metricsFeed) statusLine() string {
	if len(f.samples) == 0 {
		return statusStyle.Render("waiting for samples")
	}
	peak := 0
	for _, s := range f.samples {
		if t := s.total(); t > peak {
			peak = t
		}
	}
	return statusStyle.Render(fmt.Sprintf("%d samples · peak %d/s", len(f.samples), peak))
}

// sampleGen produces a wandering synthetic load so the live card has
// something to show without a real log pipeline behind it.
type sampleGen struct {
	rng  *rand.Rand
	info int
	warn int
	errs int
}

func newSampleGen(seed int64) *sampleGen {
	return &sampleGen{
		rng:  rand.New(rand.NewSource(seed)),
		info: 40,
		warn: 8,
		errs: 2,
	}
}

func (g *sampleGen) next(t time.Time) feedSample {
	g.info = drift(g.rng, g.info, 5, 120)
	g.warn = drift(g.rng, g.warn, 0, 40)
	g.errs = drift(g.rng, g.errs, 0, 15)
	return feedSample{At: t, Info: g.info, Warn: g.warn, Error: g.errs}
}

func drift(rng *rand.Rand, v, lo, hi int) int {
	v += rng.Intn(7) - 3
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
