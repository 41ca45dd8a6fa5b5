// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/envelope"
)

const (
	transitParams = "graphId=g1&lat=38.9&lon=-77.03&mode=TRANSIT%2CWALK&bikeSpeed=5&walkSpeed=1&which=WORST_CASE&date=2014-12-16&fromTime=25200&toTime=32400&shapefile=shp1"
)

func newTransitQuery() SinglePointQuery {
	return SinglePointQuery{
		GraphId:   "g1",
		Lat:       38.9,
		Lon:       -77.03,
		Mode:      "TRANSIT,WALK",
		BikeSpeed: 18,
		WalkSpeed: 3.6,
		Which:     envelope.WorstCase,
		Date:      time.Date(2014, time.December, 16, 0, 0, 0, 0, time.UTC),
		FromTime:  7 * time.Hour,
		ToTime:    9 * time.Hour,
		Shapefile: "shp1",
	}
}

func TestParams(t *testing.T) {
	q := newTransitQuery()
	assert.NoError(t, q.Validate())
	assert.Equal(t, transitParams, Encode(q.Params()))
}

func TestParamsNonTransit(t *testing.T) {
	q := newTransitQuery()
	q.Mode = "WALK"
	q.Which = envelope.PointEstimate
	p := q.Params()
	_, ok := p[ParameterToTime]
	assert.False(t, ok)
	assert.Equal(t, "25200", p.Get(ParameterFromTime))
	_, ok = q.Map()[ParameterToTime]
	assert.False(t, ok)
}

func TestURLs(t *testing.T) {
	q := newTransitQuery()
	assert.Equal(t, "http://backend/api/result?"+transitParams, q.ResultURL("http://backend"))
	assert.Equal(t, "/gis/result?"+transitParams, q.GisResultURL(""))
	assert.Equal(
		t,
		"/tile/surface?z={z}&x={x}&y={y}&showIso=true&showPoints=false&minTime=0&timeLimit=3600&"+transitParams,
		q.SurfaceTileURL("", 0, 60, true, false))

	comparison := q.SurfaceComparisonTileURL("", "g2", 10, 90, false, false)
	u, err := url.Parse(comparison)
	require.NoError(t, err)
	assert.Equal(t, "/tile/surfaceComparison", u.Path)
	assert.Equal(t, "g2", u.Query().Get(ParameterGraphId2))
	assert.Equal(t, "600", u.Query().Get(ParameterMinTime))
	assert.Equal(t, "5400", u.Query().Get(ParameterTimeLimit))
	assert.Equal(t, "{z}", u.Query().Get("z"))

	gis, err := url.Parse(q.GisResultComparisonURL("", "g2"))
	require.NoError(t, err)
	assert.Equal(t, PathGisResultComparison, gis.Path)
	assert.Equal(t, "g2", gis.Query().Get(ParameterGraphId2))
	assert.Equal(t, "g1", gis.Query().Get(ParameterGraphId))
	assert.Equal(t, PathGisResultComparison+"?"+transitParams+"&graphId2=g2", q.GisResultComparisonURL("", "g2"))

	assert.Equal(t, "/tile/transit?z={z}&x={x}&y={y}&scenarioId=s1", TransitTileURL("", "s1"))
	assert.Equal(t, "/tile/transitComparison?z={z}&x={x}&y={y}&scenarioId1=s1&scenarioId2=s2", TransitComparisonTileURL("", "s1", "s2"))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(url.Values{}))
	v := url.Values{}
	v.Set("zoo", "1")
	v.Set(ParameterShapefile, "shp1")
	v.Set("alpha", "a b")
	v.Set(ParameterGraphId, "g1")
	assert.Equal(t, "graphId=g1&shapefile=shp1&alpha=a+b&zoo=1", Encode(v))
}

func TestParse(t *testing.T) {
	v := url.Values{}
	v.Set("graphId", "g1")
	v.Set("lat", "38.9")
	v.Set("lon", "-77.03")
	v.Set("bikeSpeed", "18")
	v.Set("walkSpeed", "3.6")
	v.Set("date", "2014-12-16")
	v.Set("fromTime", "07:00")
	v.Set("toTime", "32400")
	v.Set("shapefile", "shp1")

	q, err := Parse(v)
	require.NoError(t, err)
	assert.Equal(t, newTransitQuery(), q)
}

func TestParseDefaults(t *testing.T) {
	v := url.Values{}
	v.Set("graphId", "g1")
	v.Set("lat", "38.9")
	v.Set("lon", "-77.03")
	v.Set("mode", "BICYCLE")
	v.Set("date", "2014-12-16")
	v.Set("shapefile", "shp1")

	q, err := Parse(v)
	require.NoError(t, err)
	assert.Equal(t, envelope.PointEstimate, q.Which)
	assert.Equal(t, DefaultBikeSpeed, q.BikeSpeed)
	assert.Equal(t, DefaultFromTime, q.FromTime)
}

func TestParseErrors(t *testing.T) {
	v := url.Values{}
	v.Set("graphId", "g1")
	v.Set("lon", "-77.03")
	_, err := Parse(v)
	assert.IsType(t, &rerrors.ErrMissingRequiredParameter{}, err)

	v.Set("lat", "north")
	_, err = Parse(v)
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, err)

	v.Set("lat", "95")
	v.Set("date", "2014-12-16")
	v.Set("shapefile", "shp1")
	_, err = Parse(v)
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)

	v.Set("lat", "38.9")
	v.Set("which", "POINT_ESTIMATE")
	_, err = Parse(v)
	assert.IsType(t, &envelope.ErrDisabledOption{}, err)

	v.Set("which", "BEST_CASE")
	v.Set("toTime", "06:00")
	_, err = Parse(v)
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, err)
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("fromTime", "07:30")
	assert.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute, d)

	d, err = ParseClock("fromTime", "07:30:15")
	assert.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute+15*time.Second, d)

	_, err = ParseClock("fromTime", "-1")
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)

	_, err = ParseClock("fromTime", "noon")
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, err)

	assert.Equal(t, 25200+60+1, MakeTime(time.Date(2014, 12, 15, 7, 1, 1, 0, time.UTC)))
	assert.Equal(t, 5.0, KilometersPerHourToMetersPerSecond(18))
}
