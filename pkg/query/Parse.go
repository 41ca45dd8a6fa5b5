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
	"time"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/mode"
)

// Parse parses a single-point query from user-facing query parameters.
// Speeds are in km/h, the date is YYYY-MM-DD, and times are "HH:MM" or seconds since midnight.
// A missing mode defaults to TRANSIT,WALK and a missing which defaults to the envelope option the
// mode selects by default.
func Parse(v url.Values) (SinglePointQuery, error) {
	q := SinglePointQuery{
		GraphId:   v.Get(ParameterGraphId),
		Mode:      v.Get(ParameterMode),
		Shapefile: v.Get(ParameterShapefile),
		BikeSpeed: DefaultBikeSpeed,
		WalkSpeed: DefaultWalkSpeed,
		FromTime:  DefaultFromTime,
		ToTime:    DefaultToTime,
	}

	if len(q.Mode) == 0 {
		q.Mode = mode.Default
	}

	lat, err := parseFloat(v, ParameterLat)
	if err != nil {
		return q, err
	}
	q.Lat = lat

	lon, err := parseFloat(v, ParameterLon)
	if err != nil {
		return q, err
	}
	q.Lon = lon

	if str := v.Get(ParameterBikeSpeed); len(str) > 0 {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return q, &rerrors.ErrInvalidParameter{Name: ParameterBikeSpeed, Value: str}
		}
		q.BikeSpeed = f
	}

	if str := v.Get(ParameterWalkSpeed); len(str) > 0 {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return q, &rerrors.ErrInvalidParameter{Name: ParameterWalkSpeed, Value: str}
		}
		q.WalkSpeed = f
	}

	state, _ := envelope.Transition(envelope.State{}, q.Mode, true)
	q.Which = state.Selected
	if str := v.Get(ParameterWhich); len(str) > 0 {
		w, err := envelope.ParseWhich(str)
		if err != nil {
			return q, &rerrors.ErrInvalidParameter{Name: ParameterWhich, Value: str}
		}
		if _, _, err := envelope.Select(state, w, true); err != nil {
			return q, err
		}
		q.Which = w
	}

	if str := v.Get(ParameterDate); len(str) > 0 {
		d, err := time.Parse(DateFormat, strings.TrimSpace(str))
		if err != nil {
			return q, &rerrors.ErrInvalidParameter{Name: ParameterDate, Value: str}
		}
		q.Date = d
	}

	if str := v.Get(ParameterFromTime); len(str) > 0 {
		d, err := ParseClock(ParameterFromTime, str)
		if err != nil {
			return q, err
		}
		q.FromTime = d
	}

	if str := v.Get(ParameterToTime); len(str) > 0 {
		d, err := ParseClock(ParameterToTime, str)
		if err != nil {
			return q, err
		}
		q.ToTime = d
	}

	return q, q.Validate()
}

func parseFloat(v url.Values, name string) (float64, error) {
	str := v.Get(name)
	if len(str) == 0 {
		return 0, &rerrors.ErrMissingRequiredParameter{Name: name}
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, &rerrors.ErrInvalidParameter{Name: name, Value: str}
	}
	return f, nil
}
