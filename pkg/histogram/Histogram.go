// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

// Counts is a single histogram as returned by the routing backend.
type Counts struct {
	Sums Sums `json:"sums"`
}

// Histogram holds up to three histograms for one attribute.
// A nil field means the statistic is absent from the result.
type Histogram struct {
	BestCase      *Counts `json:"bestCase,omitempty"`
	WorstCase     *Counts `json:"worstCase,omitempty"`
	PointEstimate *Counts `json:"pointEstimate,omitempty"`
}

func (h Histogram) Get(s Statistic) *Counts {
	switch s {
	case BestCase:
		return h.BestCase
	case WorstCase:
		return h.WorstCase
	case PointEstimate:
		return h.PointEstimate
	}
	return nil
}

func (h Histogram) Has(s Statistic) bool {
	return h.Get(s) != nil
}
