// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/histogram"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/result"
)

type fakeFetcher struct {
	sync.Mutex
	queries []query.SinglePointQuery
	fail    string
}

func (f *fakeFetcher) Result(ctx context.Context, q query.SinglePointQuery) (*result.Result, error) {
	f.Lock()
	f.queries = append(f.queries, q)
	f.Unlock()
	if q.GraphId == f.fail {
		return nil, errors.New("backend unavailable")
	}
	jobs := float64(10)
	if q.GraphId == "s2" {
		jobs = 20
	}
	return &result.Result{
		Data: map[string]histogram.Histogram{
			"blocks.jobs": {
				BestCase:  &histogram.Counts{Sums: histogram.Sums{0: jobs}},
				WorstCase: &histogram.Counts{Sums: histogram.Sums{5: jobs}},
			},
		},
		Properties: result.Properties{Schema: map[string]result.Field{"blocks.jobs": {Label: "Jobs"}}},
	}, nil
}

func newTestPanel(f Fetcher) *Panel {
	p := NewPanel(f, "")
	p.Date = time.Date(2014, time.December, 16, 0, 0, 0, 0, time.UTC)
	p.SetShapefile("shp1", "blocks", "jobs")
	return p
}

func TestNewPanel(t *testing.T) {
	p := NewPanel(nil, "")
	assert.Equal(t, envelope.WorstCase, p.Envelope.Selected)
	assert.True(t, p.Envelope.ToTimeVisible)
	assert.Equal(t, NoComparison, p.Comparison)
	assert.Equal(t, "default", p.Scenario1)
	assert.Equal(t, DefaultTimeLimit, p.TimeLimit)
}

func TestCommands(t *testing.T) {
	p := newTestPanel(&fakeFetcher{})

	refresh, err := p.SetMode("walk")
	require.NoError(t, err)
	assert.True(t, refresh)
	assert.Equal(t, "WALK", p.Mode)
	assert.Equal(t, envelope.PointEstimate, p.Envelope.Selected)

	_, err = p.SetWhich(envelope.BestCase)
	assert.IsType(t, &envelope.ErrDisabledOption{}, err)

	_, err = p.SetMode("teleport")
	assert.Error(t, err)
	assert.Equal(t, "WALK", p.Mode)

	refresh, err = p.SetMode("TRANSIT,WALK")
	require.NoError(t, err)
	assert.True(t, refresh)
	assert.Equal(t, envelope.WorstCase, p.Envelope.Selected)

	refresh, err = p.SetWhich(envelope.BestCase)
	require.NoError(t, err)
	assert.True(t, refresh)
	refresh, err = p.SetWhich(envelope.BestCase)
	require.NoError(t, err)
	assert.False(t, refresh)

	_, err = p.SetMarker(91, 0)
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)

	refresh, err = p.SetTimeLimit(10, 90)
	require.NoError(t, err)
	assert.False(t, refresh)
	_, err = p.SetTimeLimit(30, 20)
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)

	_, err = p.SetComparison(Compare, "")
	assert.IsType(t, &rerrors.ErrMissingRequiredParameter{}, err)
	refresh, err = p.SetComparison(Compare, "s2")
	require.NoError(t, err)
	assert.True(t, refresh)
	refresh, err = p.SetComparison(Compare, "s2")
	require.NoError(t, err)
	assert.False(t, refresh)

	_, err = ParseComparison("sideways")
	assert.Error(t, err)
}

func TestRefreshWithoutMarker(t *testing.T) {
	f := &fakeFetcher{}
	p := newTestPanel(f)
	require.NoError(t, p.Refresh(context.Background()))
	assert.Len(t, f.queries, 0)

	v, err := p.Render()
	require.NoError(t, err)
	assert.False(t, v.Ready)
	assert.Empty(t, v.SurfaceTileUrl)
	assert.Empty(t, v.Series)
}

func TestRefreshSingle(t *testing.T) {
	f := &fakeFetcher{}
	p := newTestPanel(f)
	p.SetLayers(true, true, false)
	_, err := p.SetMarker(38.9, -77.03)
	require.NoError(t, err)

	require.NoError(t, p.Refresh(context.Background()))
	require.Len(t, f.queries, 1)
	assert.Equal(t, "default", f.queries[0].GraphId)
	assert.Equal(t, 38.9, f.queries[0].Lat)

	v, err := p.Render()
	require.NoError(t, err)
	assert.True(t, v.Ready)
	assert.Equal(t, "Accessibility to Jobs", v.Title)
	require.Len(t, v.Series, 1)
	assert.Len(t, v.Series[0].Series, histogram.Horizon)
	assert.Equal(t, "/tile/transit?z={z}&x={x}&y={y}&scenarioId=default", v.TransitTileUrl)
	assert.Contains(t, v.SurfaceTileUrl, "/tile/surface?z={z}&x={x}&y={y}&showIso=true&showPoints=false&minTime=0&timeLimit=3600&")
	assert.Contains(t, v.GisUrl, "/gis/result?")
}

func TestRefreshCompare(t *testing.T) {
	f := &fakeFetcher{}
	p := newTestPanel(f)
	p.SetLayers(true, false, false)
	_, err := p.SetComparison(Compare, "s2")
	require.NoError(t, err)
	_, err = p.SetMarker(38.9, -77.03)
	require.NoError(t, err)

	require.NoError(t, p.Refresh(context.Background()))
	assert.Len(t, f.queries, 2)

	v, err := p.Render()
	require.NoError(t, err)
	require.Len(t, v.Series, 2)
	assert.Equal(t, SeriesScenario2, v.Series[1].Name)
	assert.Equal(t, 20.0, *v.Series[1].Series[0].BestCase)
	assert.Equal(t, "/tile/transitComparison?z={z}&x={x}&y={y}&scenarioId1=default&scenarioId2=s2", v.TransitTileUrl)
	assert.Contains(t, v.SurfaceTileUrl, "graphId2=s2")
	assert.Contains(t, v.GisUrl, "/gis/resultComparison?")
}

func TestRefreshError(t *testing.T) {
	f := &fakeFetcher{fail: "s2"}
	p := newTestPanel(f)
	_, err := p.SetComparison(Compare, "s2")
	require.NoError(t, err)
	_, err = p.SetMarker(38.9, -77.03)
	require.NoError(t, err)

	assert.Error(t, p.Refresh(context.Background()))
	assert.False(t, p.Ready())
}

func TestRenderMissingAttribute(t *testing.T) {
	p := newTestPanel(&fakeFetcher{})
	_, err := p.SetMarker(38.9, -77.03)
	require.NoError(t, err)
	require.NoError(t, p.Refresh(context.Background()))
	p.SetAttribute("workers")
	_, err = p.Render()
	assert.IsType(t, &result.ErrMissingAttribute{}, err)
}

func TestParsePanel(t *testing.T) {
	v := url.Values{}
	v.Set("graphId", "s1")
	v.Set("graphId2", "s2")
	v.Set("lat", "38.9")
	v.Set("lon", "-77.03")
	v.Set("date", "2014-12-16")
	v.Set("shapefile", "shp1")
	v.Set("category", "blocks")
	v.Set("attribute", "jobs")
	v.Set("timeLimit", "90")
	v.Set("showTransit", "true")

	p, err := ParsePanel(&fakeFetcher{}, "http://backend", v)
	require.NoError(t, err)
	assert.Equal(t, Compare, p.Comparison)
	assert.Equal(t, "s1", p.Scenario1)
	assert.Equal(t, "s2", p.Scenario2)
	assert.Equal(t, 90, p.TimeLimit)
	assert.Equal(t, envelope.WorstCase, p.Envelope.Selected)
	require.NotNil(t, p.Marker)
	assert.Equal(t, -77.03, p.Marker.Lon)

	require.NoError(t, p.Refresh(context.Background()))
	view, err := p.Render()
	require.NoError(t, err)
	assert.Equal(t, "http://backend/tile/transitComparison?z={z}&x={x}&y={y}&scenarioId1=s1&scenarioId2=s2", view.TransitTileUrl)
	assert.Len(t, view.Series, 2)

	v.Set("timeLimit", "500")
	_, err = ParsePanel(&fakeFetcher{}, "", v)
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)

	v.Set("timeLimit", "soon")
	_, err = ParsePanel(&fakeFetcher{}, "", v)
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, err)
}

func TestOverlays(t *testing.T) {
	p := newTestPanel(&fakeFetcher{})
	v := p.Overlays()
	assert.Empty(t, v.SurfaceTileUrl)

	_, err := p.SetMarker(38.9, -77.03)
	require.NoError(t, err)
	v = p.Overlays()
	assert.False(t, v.Ready)
	assert.Contains(t, v.SurfaceTileUrl, "/tile/surface?z={z}&x={x}&y={y}&")
	assert.Contains(t, v.GisUrl, "graphId=default")
}
