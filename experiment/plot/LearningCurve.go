// Package plot renders the data saved by experiment Trackers as
// interactive HTML charts
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
)

// Series is a named sequence of per-episode values, such as the
// returns tracked by tracker.Return
type Series struct {
	Name   string
	Values []float64
}

// Smooth returns the moving average of values over a trailing window.
// The first window-1 averages are taken over all values seen so far.
func Smooth(values []float64, window int) []float64 {
	if window <= 1 {
		return append([]float64(nil), values...)
	}

	smoothed := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		smoothed[i] = stat.Mean(values[start:i+1], nil)
	}
	return smoothed
}

// LearningCurve renders a line chart of each series to w, with the
// values of each series smoothed over window episodes
func LearningCurve(w io.Writer, title string, window int,
	series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("learningCurve: no series to plot")
	}

	episodes := 0
	for _, s := range series {
		if len(s.Values) > episodes {
			episodes = len(s.Values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Return"}),
	)

	xAxis := make([]string, episodes)
	for i := range xAxis {
		xAxis[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(xAxis)

	for _, s := range series {
		smoothed := Smooth(s.Values, window)

		items := make([]opts.LineData, 0, len(smoothed))
		for _, v := range smoothed {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("learningCurve: could not render: %v", err)
	}
	return nil
}
