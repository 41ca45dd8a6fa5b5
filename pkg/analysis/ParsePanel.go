// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"net/url"
	"strconv"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/query"
)

const (
	ParameterCategory    = "category"
	ParameterAttribute   = "attribute"
	ParameterComparison  = "comparison"
	ParameterShowTransit = "showTransit"
)

// ParsePanel returns a panel with the settings of the query parameters, applied through the panel commands.
// The query parameters are those of query.Parse plus graphId2, category, attribute,
// minTime and timeLimit in minutes, and the showTransit, showIso, and showPoints layer toggles.
// If graphId2 is set, the panel compares the two scenarios.
func ParsePanel(fetcher Fetcher, baseUrl string, v url.Values) (*Panel, error) {
	q, err := query.Parse(v)
	if err != nil {
		return nil, err
	}

	p := NewPanel(fetcher, baseUrl)

	if _, err := p.SetMode(q.Mode); err != nil {
		return nil, err
	}
	if _, err := p.SetWhich(q.Which); err != nil {
		return nil, err
	}
	if _, err := p.SetScenario(q.GraphId); err != nil {
		return nil, err
	}
	if _, err := p.SetSpeeds(q.WalkSpeed, q.BikeSpeed); err != nil {
		return nil, err
	}
	if _, err := p.SetDate(q.Date, q.FromTime, q.ToTime); err != nil {
		return nil, err
	}
	if _, err := p.SetMarker(q.Lat, q.Lon); err != nil {
		return nil, err
	}
	p.SetShapefile(q.Shapefile, v.Get(ParameterCategory), v.Get(ParameterAttribute))

	comparison := NoComparison
	if len(v.Get(query.ParameterGraphId2)) > 0 {
		comparison = Compare
	}
	if str := v.Get(ParameterComparison); len(str) > 0 {
		c, err := ParseComparison(str)
		if err != nil {
			return nil, err
		}
		comparison = c
	}
	if _, err := p.SetComparison(comparison, v.Get(query.ParameterGraphId2)); err != nil {
		return nil, err
	}

	minTime, err := parseInt(v, query.ParameterMinTime, p.MinTime)
	if err != nil {
		return nil, err
	}
	timeLimit, err := parseInt(v, query.ParameterTimeLimit, p.TimeLimit)
	if err != nil {
		return nil, err
	}
	if _, err := p.SetTimeLimit(minTime, timeLimit); err != nil {
		return nil, err
	}

	showTransit, err := parseBool(v, ParameterShowTransit)
	if err != nil {
		return nil, err
	}
	showIso, err := parseBool(v, query.ParameterShowIso)
	if err != nil {
		return nil, err
	}
	showPoints, err := parseBool(v, query.ParameterShowPoints)
	if err != nil {
		return nil, err
	}
	p.SetLayers(showTransit, showIso, showPoints)

	return p, nil
}

func parseInt(v url.Values, name string, fallback int) (int, error) {
	str := v.Get(name)
	if len(str) == 0 {
		return fallback, nil
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, &rerrors.ErrInvalidParameter{Name: name, Value: str}
	}
	return i, nil
}

func parseBool(v url.Values, name string) (bool, error) {
	str := v.Get(name)
	if len(str) == 0 {
		return false, nil
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, &rerrors.ErrInvalidParameter{Name: name, Value: str}
	}
	return b, nil
}
