// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

import (
	"github.com/spatialcurrent/analyst/pkg/mode"
)

// Transition updates the envelope options available for the given mode.
//
// For transit modes, the best and worst case are enabled and the selection falls back to WORST_CASE
// if the previous selection is disabled or missing.  For all other modes, only the point estimate
// is enabled and it is always selected.
//
// The returned bool is true when the caller should refresh the results.
// Programmatic transitions never request a refresh.
func Transition(state State, m string, isProgrammatic bool) (State, bool) {
	next := State{Selected: state.Selected}
	if mode.IsTransit(m) {
		next.Enabled = append(make([]Which, 0, len(transitOptions)), transitOptions...)
		if !next.IsEnabled(next.Selected) {
			next.Selected = WorstCase
		}
		next.ToTimeVisible = true
	} else {
		next.Enabled = append(make([]Which, 0, len(nonTransitOptions)), nonTransitOptions...)
		next.Selected = PointEstimate
		next.ToTimeVisible = false
	}
	return next, !isProgrammatic
}
