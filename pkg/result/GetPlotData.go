// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package result

import (
	"github.com/spatialcurrent/analyst/pkg/histogram"
)

// GetPlotData returns the cumulative distribution of the attribute's histograms over the first 120 minutes.
func GetPlotData(r *Result, attribute string) (histogram.CumulativeSeries, error) {
	if r == nil {
		return nil, ErrMissingData
	}
	h, ok := r.Data[attribute]
	if !ok {
		return nil, &ErrMissingAttribute{Attribute: attribute}
	}
	return histogram.Accumulate(h, histogram.Horizon), nil
}
