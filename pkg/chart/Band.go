// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package chart

import (
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// BandSeries fills the area between an upper and a lower series.
type BandSeries struct {
	Name    string
	Style   gochart.Style
	XValues []float64
	Upper   []float64
	Lower   []float64
}

func (b BandSeries) GetName() string {
	return b.Name
}

func (b BandSeries) GetStyle() gochart.Style {
	return b.Style
}

func (b BandSeries) GetYAxis() gochart.YAxisType {
	return gochart.YAxisPrimary
}

func (b BandSeries) Validate() error {
	if len(b.Upper) != len(b.XValues) || len(b.Lower) != len(b.XValues) {
		return errors.Errorf("band %q has %d x values, %d upper values, and %d lower values", b.Name, len(b.XValues), len(b.Upper), len(b.Lower))
	}
	return nil
}

// Render fills the polygon traced along the upper values and back along the lower values.
func (b BandSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	n := len(b.XValues)
	if n == 0 {
		return
	}
	x := func(i int) int { return canvasBox.Left + xrange.Translate(b.XValues[i]) }
	r.SetFillColor(b.Style.FillColor)
	r.MoveTo(x(0), canvasBox.Bottom-yrange.Translate(b.Upper[0]))
	for i := 1; i < n; i++ {
		r.LineTo(x(i), canvasBox.Bottom-yrange.Translate(b.Upper[i]))
	}
	for i := n - 1; i >= 0; i-- {
		r.LineTo(x(i), canvasBox.Bottom-yrange.Translate(b.Lower[i]))
	}
	r.Close()
	r.Fill()
}
