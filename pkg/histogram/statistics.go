// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package histogram turns per-minute accessibility histograms into cumulative series.
package histogram

// Statistic names one of the three histograms of a result.
type Statistic string

const (
	// Horizon is the number of minutes in a cumulative series.
	Horizon = 120

	BestCase      Statistic = "bestCase"
	WorstCase     Statistic = "worstCase"
	PointEstimate Statistic = "pointEstimate"
)

var (
	// Statistics is the list of statistics in the order they are accumulated.
	Statistics = []Statistic{WorstCase, PointEstimate, BestCase}
)
