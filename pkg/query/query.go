// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package query assembles the query parameters of single-point requests for the result, tile, and GIS endpoints.
package query

import (
	"time"
)

const (
	ParameterGraphId   = "graphId"
	ParameterGraphId2  = "graphId2"
	ParameterLat       = "lat"
	ParameterLon       = "lon"
	ParameterMode      = "mode"
	ParameterBikeSpeed = "bikeSpeed"
	ParameterWalkSpeed = "walkSpeed"
	ParameterWhich     = "which"
	ParameterDate      = "date"
	ParameterFromTime  = "fromTime"
	ParameterToTime    = "toTime"
	ParameterShapefile = "shapefile"

	ParameterShowIso    = "showIso"
	ParameterShowPoints = "showPoints"
	ParameterMinTime    = "minTime"
	ParameterTimeLimit  = "timeLimit"

	ParameterScenarioId  = "scenarioId"
	ParameterScenarioId1 = "scenarioId1"
	ParameterScenarioId2 = "scenarioId2"

	DateFormat = "2006-01-02"

	// TilePlaceholders is the tile part of a tile url template, filled in by the map client.
	TilePlaceholders = "z={z}&x={x}&y={y}"

	PathResult                = "/api/result"
	PathTileSurface           = "/tile/surface"
	PathTileSurfaceComparison = "/tile/surfaceComparison"
	PathTileTransit           = "/tile/transit"
	PathTileTransitComparison = "/tile/transitComparison"
	PathGisResult             = "/gis/result"
	PathGisResultComparison   = "/gis/resultComparison"

	DefaultWalkSpeed = 4.8  // in km/h
	DefaultBikeSpeed = 16.0 // in km/h

	DefaultFromTime = 7 * time.Hour
	DefaultToTime   = 9 * time.Hour
)
