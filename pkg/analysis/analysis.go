// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package analysis holds the state of the single-point analysis panel.
//
// Every command applies one pure function to the panel and returns whether the results need to be refreshed.
// Refresh fetches the results of one or two scenarios and Render assembles the overlays and chart series.
package analysis

import (
	"context"

	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/result"
)

const (
	DefaultTimeLimit = 60 // in minutes
	MaxTimeLimit     = 120

	SeriesScenario1 = "Scenario 1"
	SeriesScenario2 = "Scenario 2"
)

// Fetcher fetches the single-point result of a query.
type Fetcher interface {
	Result(ctx context.Context, q query.SinglePointQuery) (*result.Result, error)
}

// Marker is the origin of the analysis.
type Marker struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
