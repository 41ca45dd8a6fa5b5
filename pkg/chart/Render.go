// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package chart

import (
	"io"

	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spatialcurrent/analyst/pkg/histogram"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

type Input struct {
	Title  string
	Series []NamedSeries
	Width  int
	Height int
}

func color(i int) drawing.Color {
	return Palette[i%len(Palette)]
}

// buildSeries returns the band and the line series of one named series.
// Best and worst case are drawn as a translucent band between the two curves.
func buildSeries(i int, ns NamedSeries) ([]gochart.Series, []gochart.Series) {
	c := color(i)
	minutes := ns.Series.Minutes()
	bands := make([]gochart.Series, 0)
	lines := make([]gochart.Series, 0)
	if ns.Series.Has(histogram.BestCase) && ns.Series.Has(histogram.WorstCase) {
		bands = append(bands, BandSeries{
			Name:    ns.Name + " (range)",
			Style:   gochart.Style{StrokeColor: c, FillColor: c.WithAlpha(BandAlpha)},
			XValues: minutes,
			Upper:   ns.Series.Values(histogram.BestCase),
			Lower:   ns.Series.Values(histogram.WorstCase),
		})
	}
	for _, s := range []histogram.Statistic{histogram.BestCase, histogram.WorstCase} {
		if ns.Series.Has(s) {
			lines = append(lines, gochart.ContinuousSeries{
				Name:    ns.Name + " (" + string(s) + ")",
				XValues: minutes,
				YValues: ns.Series.Values(s),
				Style:   gochart.Style{StrokeColor: c, StrokeWidth: 1},
			})
		}
	}
	if ns.Series.Has(histogram.PointEstimate) {
		lines = append(lines, gochart.ContinuousSeries{
			Name:    ns.Name,
			XValues: minutes,
			YValues: ns.Series.Values(histogram.PointEstimate),
			Style:   gochart.Style{StrokeColor: c, StrokeWidth: 2},
		})
	}
	return bands, lines
}

// CheckSize returns an error if the chart dimensions are negative or above the maximum.
// Zero selects the default.
func CheckSize(width int, height int) error {
	if width < 0 || width > MaxWidth {
		return &rerrors.ErrOutOfRange{Name: "width", Value: width, Min: 0, Max: MaxWidth}
	}
	if height < 0 || height > MaxHeight {
		return &rerrors.ErrOutOfRange{Name: "height", Value: height, Min: 0, Max: MaxHeight}
	}
	return nil
}

// Render writes the series as a PNG line chart to w.
// Bands of every series are drawn below the lines.
func Render(w io.Writer, input Input) error {
	err := CheckSize(input.Width, input.Height)
	if err != nil {
		return err
	}
	bands := make([]gochart.Series, 0)
	lines := make([]gochart.Series, 0)
	max := 0.0
	for i, ns := range input.Series {
		b, l := buildSeries(i, ns)
		bands = append(bands, b...)
		lines = append(lines, l...)
		if m := ns.Series.Max(); m > max {
			max = m
		}
	}
	if len(lines) == 0 {
		return ErrNoSeries
	}
	series := append(bands, lines...)
	if max == 0 {
		max = 1
	}

	width := input.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := input.Height
	if height <= 0 {
		height = DefaultHeight
	}

	ch := gochart.Chart{
		Title:      input.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 16, Right: 12, Bottom: 40}},
		XAxis: gochart.XAxis{
			Name:  LabelMinutes,
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(histogram.Horizon)},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: max * 1.05},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	err = ch.Render(gochart.PNG, w)
	if err != nil {
		return errors.Wrap(err, "error rendering chart")
	}
	return nil
}
