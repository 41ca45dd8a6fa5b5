// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/envelope"
)

// View is the rendered state of the panel.
type View struct {
	Ready          bool
	Envelope       envelope.State
	SurfaceTileUrl string
	TransitTileUrl string
	GisUrl         string
	Title          string
	Series         []chart.NamedSeries
}

func (v View) Map() map[string]interface{} {
	m := map[string]interface{}{
		"ready":    v.Ready,
		"envelope": v.Envelope.Map(),
	}
	if len(v.SurfaceTileUrl) > 0 {
		m["surfaceTileUrl"] = v.SurfaceTileUrl
	}
	if len(v.TransitTileUrl) > 0 {
		m["transitTileUrl"] = v.TransitTileUrl
	}
	if len(v.GisUrl) > 0 {
		m["gisUrl"] = v.GisUrl
	}
	if len(v.Title) > 0 {
		m["title"] = v.Title
	}
	if len(v.Series) > 0 {
		series := make([]map[string]interface{}, 0, len(v.Series))
		for _, s := range v.Series {
			series = append(series, s.Map())
		}
		m["series"] = series
	}
	return m
}

// ChartInput returns the input for rendering the view's series as a chart.
func (v View) ChartInput(width int, height int) chart.Input {
	return chart.Input{
		Title:  v.Title,
		Series: v.Series,
		Width:  width,
		Height: height,
	}
}

// Rows returns the records of every series as one table, with the series name in the "scenario" column.
func (v View) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, 0)
	for _, s := range v.Series {
		for _, r := range s.Series {
			m := r.Map()
			m["scenario"] = s.Name
			rows = append(rows, m)
		}
	}
	return rows
}
