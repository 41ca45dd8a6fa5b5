// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/result"
)

// Overlays returns the tile overlay and GIS download urls of the panel, whether or not the results have been fetched.
// The surface overlay and GIS download need a marker.
func (p *Panel) Overlays() View {
	v := View{
		Ready:    p.Ready(),
		Envelope: p.Envelope,
	}

	if p.ShowTransit {
		if p.IsComparing() {
			v.TransitTileUrl = query.TransitComparisonTileURL(p.BaseUrl, p.Scenario1, p.Scenario2)
		} else {
			v.TransitTileUrl = query.TransitTileURL(p.BaseUrl, p.Scenario1)
		}
	}

	if p.Marker == nil {
		return v
	}

	q := p.Query(p.Scenario1)
	if p.IsComparing() {
		v.SurfaceTileUrl = q.SurfaceComparisonTileURL(p.BaseUrl, p.Scenario2, p.MinTime, p.TimeLimit, p.ShowIso, p.ShowPoints)
		v.GisUrl = q.GisResultComparisonURL(p.BaseUrl, p.Scenario2)
	} else {
		v.SurfaceTileUrl = q.SurfaceTileURL(p.BaseUrl, p.MinTime, p.TimeLimit, p.ShowIso, p.ShowPoints)
		v.GisUrl = q.GisResultURL(p.BaseUrl)
	}
	return v
}

// Render returns the overlays and chart series of the panel.
// The surface overlay, GIS download, and chart are only rendered once the results are ready.
func (p *Panel) Render() (View, error) {
	v := p.Overlays()

	if !v.Ready {
		v.SurfaceTileUrl = ""
		v.GisUrl = ""
		return v, nil
	}

	if len(p.Attribute) == 0 {
		return v, nil
	}

	key := result.AttributeKey(p.CategoryId, p.Attribute)
	series1, err := result.GetPlotData(p.Result1, key)
	if err != nil {
		return v, err
	}
	v.Title = chart.Title(p.Result1.Label(key))
	v.Series = []chart.NamedSeries{{Name: SeriesScenario1, Series: series1}}
	if p.IsComparing() {
		series2, err := result.GetPlotData(p.Result2, key)
		if err != nil {
			return v, err
		}
		v.Series = append(v.Series, chart.NamedSeries{Name: SeriesScenario2, Series: series2})
	}
	return v, nil
}
