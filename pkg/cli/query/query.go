// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package query contains the flags describing a single-point accessibility query.
package query

import (
	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/query"
)

const (
	FlagGraphId     = "graph-id"
	FlagGraphId2    = "graph-id-2"
	FlagLat         = "lat"
	FlagLon         = "lon"
	FlagMode        = "mode"
	FlagWhich       = "which"
	FlagDate        = "date"
	FlagFromTime    = "from-time"
	FlagToTime      = "to-time"
	FlagWalkSpeed   = "walk-speed"
	FlagBikeSpeed   = "bike-speed"
	FlagShapefile   = "shapefile"
	FlagCategory    = "category"
	FlagAttribute   = "attribute"
	FlagComparison  = "comparison"
	FlagMinTime     = "min-time"
	FlagTimeLimit   = "time-limit"
	FlagShowTransit = "show-transit"
	FlagShowIso     = "show-iso"
	FlagShowPoints  = "show-points"
)

// parameters maps each flag to its query parameter.
var parameters = map[string]string{
	FlagGraphId:     query.ParameterGraphId,
	FlagGraphId2:    query.ParameterGraphId2,
	FlagLat:         query.ParameterLat,
	FlagLon:         query.ParameterLon,
	FlagMode:        query.ParameterMode,
	FlagWhich:       query.ParameterWhich,
	FlagDate:        query.ParameterDate,
	FlagFromTime:    query.ParameterFromTime,
	FlagToTime:      query.ParameterToTime,
	FlagWalkSpeed:   query.ParameterWalkSpeed,
	FlagBikeSpeed:   query.ParameterBikeSpeed,
	FlagShapefile:   query.ParameterShapefile,
	FlagCategory:    analysis.ParameterCategory,
	FlagAttribute:   analysis.ParameterAttribute,
	FlagComparison:  analysis.ParameterComparison,
	FlagMinTime:     query.ParameterMinTime,
	FlagTimeLimit:   query.ParameterTimeLimit,
	FlagShowTransit: analysis.ParameterShowTransit,
	FlagShowIso:     query.ParameterShowIso,
	FlagShowPoints:  query.ParameterShowPoints,
}
