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
	"time"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/mode"
)

// SinglePointQuery is a request for the accessibility of a single origin.
type SinglePointQuery struct {
	GraphId   string
	Lat       float64
	Lon       float64
	Mode      string
	BikeSpeed float64 // in km/h
	WalkSpeed float64 // in km/h
	Which     envelope.Which
	Date      time.Time
	FromTime  time.Duration // since midnight
	ToTime    time.Duration // since midnight, only used for transit modes
	Shapefile string
}

// IsTransit returns true if the query uses public transport.
func (q SinglePointQuery) IsTransit() bool {
	return mode.IsTransit(q.Mode)
}

// Validate returns an error if the query cannot be sent to the backend.
func (q SinglePointQuery) Validate() error {
	if len(q.GraphId) == 0 {
		return &rerrors.ErrMissingRequiredParameter{Name: ParameterGraphId}
	}
	if q.Lat < -90 || q.Lat > 90 {
		return &rerrors.ErrOutOfRange{Name: ParameterLat, Value: q.Lat, Min: -90, Max: 90}
	}
	if q.Lon < -180 || q.Lon > 180 {
		return &rerrors.ErrOutOfRange{Name: ParameterLon, Value: q.Lon, Min: -180, Max: 180}
	}
	if _, err := mode.Parse(q.Mode); err != nil {
		return &rerrors.ErrInvalidParameter{Name: ParameterMode, Value: q.Mode}
	}
	if _, err := envelope.ParseWhich(string(q.Which)); err != nil {
		return &rerrors.ErrInvalidParameter{Name: ParameterWhich, Value: q.Which}
	}
	if q.BikeSpeed <= 0 {
		return &rerrors.ErrInvalidParameter{Name: ParameterBikeSpeed, Value: q.BikeSpeed}
	}
	if q.WalkSpeed <= 0 {
		return &rerrors.ErrInvalidParameter{Name: ParameterWalkSpeed, Value: q.WalkSpeed}
	}
	if q.Date.IsZero() {
		return &rerrors.ErrMissingRequiredParameter{Name: ParameterDate}
	}
	if q.IsTransit() && q.ToTime < q.FromTime {
		return &rerrors.ErrInvalidParameter{Name: ParameterToTime, Value: q.ToTime}
	}
	if len(q.Shapefile) == 0 {
		return &rerrors.ErrMissingRequiredParameter{Name: ParameterShapefile}
	}
	return nil
}

// Params returns the query parameters understood by the result, tile, and GIS endpoints.
// Encode them with Encode to keep ParameterOrder.
// Speeds are sent in m/s and times in seconds since midnight.
// The toTime parameter is only included for transit modes.
func (q SinglePointQuery) Params() url.Values {
	v := url.Values{}
	v.Set(ParameterGraphId, q.GraphId)
	v.Set(ParameterLat, formatFloat(q.Lat))
	v.Set(ParameterLon, formatFloat(q.Lon))
	v.Set(ParameterMode, q.Mode)
	v.Set(ParameterBikeSpeed, formatFloat(KilometersPerHourToMetersPerSecond(q.BikeSpeed)))
	v.Set(ParameterWalkSpeed, formatFloat(KilometersPerHourToMetersPerSecond(q.WalkSpeed)))
	v.Set(ParameterWhich, string(q.Which))
	v.Set(ParameterDate, q.Date.Format(DateFormat))
	v.Set(ParameterFromTime, strconv.Itoa(int(q.FromTime/time.Second)))
	if q.IsTransit() {
		v.Set(ParameterToTime, strconv.Itoa(int(q.ToTime/time.Second)))
	}
	v.Set(ParameterShapefile, q.Shapefile)
	return v
}

func (q SinglePointQuery) Map() map[string]interface{} {
	m := map[string]interface{}{
		ParameterGraphId:   q.GraphId,
		ParameterLat:       q.Lat,
		ParameterLon:       q.Lon,
		ParameterMode:      q.Mode,
		ParameterBikeSpeed: q.BikeSpeed,
		ParameterWalkSpeed: q.WalkSpeed,
		ParameterWhich:     string(q.Which),
		ParameterDate:      q.Date.Format(DateFormat),
		ParameterFromTime:  int(q.FromTime / time.Second),
		ParameterShapefile: q.Shapefile,
	}
	if q.IsTransit() {
		m[ParameterToTime] = int(q.ToTime / time.Second)
	}
	return m
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
