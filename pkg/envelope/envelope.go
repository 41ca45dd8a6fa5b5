// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package envelope decides which travel-time envelope statistics can be selected for a travel mode.
//
// Transit requests are profile requests and only have a best case and a worst case.
// On-street requests only have a point estimate.
package envelope

// Which is a travel-time envelope statistic.
type Which string

const (
	None          Which = ""
	PointEstimate Which = "POINT_ESTIMATE"
	BestCase      Which = "BEST_CASE"
	WorstCase     Which = "WORST_CASE"
	Spread        Which = "SPREAD"
)

var (
	// Options is the canonical order of the envelope options.
	Options = []Which{PointEstimate, BestCase, WorstCase, Spread}

	transitOptions    = []Which{BestCase, WorstCase}
	nonTransitOptions = []Which{PointEstimate}
)

func (w Which) String() string {
	return string(w)
}
