// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

// Accumulate returns the cumulative distribution of the histogram over minutes [0, horizon).
// The value of a statistic at minute i is the sum of its counts over minutes [0, i].
// Statistics absent from the histogram are absent from every record.
// Counts at minutes greater than or equal to the horizon are ignored.
func Accumulate(h Histogram, horizon int) CumulativeSeries {
	if horizon < 0 {
		horizon = 0
	}
	series := make(CumulativeSeries, horizon)
	for _, s := range Statistics {
		counts := h.Get(s)
		if counts == nil {
			continue
		}
		total := 0.0
		for i := 0; i < horizon; i++ {
			total += counts.Sums[i]
			series[i].set(s, total)
		}
	}
	for i := range series {
		series[i].Minute = i
	}
	return series
}
