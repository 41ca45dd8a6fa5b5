// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package chart renders cumulative accessibility series as PNG line charts.
package chart

import (
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spatialcurrent/analyst/pkg/histogram"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 225

	MaxWidth  = 2000
	MaxHeight = 2000

	// BandAlpha is the opacity of the band between best and worst case.
	BandAlpha = 64

	LabelMinutes = "Minutes"
)

var (
	ErrNoSeries = errors.New("chart has no series to render")
)

// Palette holds the line colors of the first and second scenario.
var Palette = []drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
}

// NamedSeries is a cumulative series with a legend name.
type NamedSeries struct {
	Name   string                     `json:"name"`
	Series histogram.CumulativeSeries `json:"series"`
}

func (ns NamedSeries) Map() map[string]interface{} {
	return map[string]interface{}{
		"name":   ns.Name,
		"series": ns.Series.Maps(),
	}
}

// Title returns the chart title for the attribute label.
func Title(label string) string {
	return "Accessibility to " + label
}
