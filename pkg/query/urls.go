// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"net/url"
	"strconv"
	"strings"
)

// ResultURL returns the url of the single-point result.
func (q SinglePointQuery) ResultURL(base string) string {
	return base + PathResult + "?" + Encode(q.Params())
}

// SurfaceTileURL returns the tile url template of the travel time surface.
// minTime and timeLimit are in minutes, as chosen on the time slider.
func (q SinglePointQuery) SurfaceTileURL(base string, minTime int, timeLimit int, showIso bool, showPoints bool) string {
	return tileURL(base+PathTileSurface, surfaceParams(minTime, timeLimit, showIso, showPoints), q.Params())
}

// SurfaceComparisonTileURL returns the tile url template comparing the surface of this query with graphId2.
func (q SinglePointQuery) SurfaceComparisonTileURL(base string, graphId2 string, minTime int, timeLimit int, showIso bool, showPoints bool) string {
	p := q.Params()
	p.Set(ParameterGraphId2, graphId2)
	return tileURL(base+PathTileSurfaceComparison, surfaceParams(minTime, timeLimit, showIso, showPoints), p)
}

// GisResultURL returns the download url of the result as GIS data.
func (q SinglePointQuery) GisResultURL(base string) string {
	return base + PathGisResult + "?" + Encode(q.Params())
}

// GisResultComparisonURL returns the download url of the comparison with graphId2 as GIS data.
func (q SinglePointQuery) GisResultComparisonURL(base string, graphId2 string) string {
	p := q.Params()
	p.Set(ParameterGraphId2, graphId2)
	return base + PathGisResultComparison + "?" + Encode(p)
}

// TransitTileURL returns the tile url template of the transit network of a scenario.
func TransitTileURL(base string, scenarioId string) string {
	return tileURL(base+PathTileTransit, url.Values{ParameterScenarioId: []string{scenarioId}})
}

// TransitComparisonTileURL returns the tile url template comparing the transit networks of two scenarios.
func TransitComparisonTileURL(base string, scenarioId1 string, scenarioId2 string) string {
	return tileURL(base+PathTileTransitComparison, url.Values{
		ParameterScenarioId1: []string{scenarioId1},
		ParameterScenarioId2: []string{scenarioId2},
	})
}

func surfaceParams(minTime int, timeLimit int, showIso bool, showPoints bool) url.Values {
	return url.Values{
		ParameterShowIso:    []string{strconv.FormatBool(showIso)},
		ParameterShowPoints: []string{strconv.FormatBool(showPoints)},
		ParameterMinTime:    []string{strconv.Itoa(minTime * 60)},
		ParameterTimeLimit:  []string{strconv.Itoa(timeLimit * 60)},
	}
}

// tileURL keeps the tile placeholders unescaped so map clients can fill them in.
func tileURL(path string, params ...url.Values) string {
	parts := []string{TilePlaceholders}
	for _, p := range params {
		if encoded := Encode(p); len(encoded) > 0 {
			parts = append(parts, encoded)
		}
	}
	return path + "?" + strings.Join(parts, "&")
}
