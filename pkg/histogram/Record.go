// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

// Record is one minute of a cumulative series.
// Statistics that are absent from the histogram are nil.
type Record struct {
	Minute        int      `json:"minute"`
	BestCase      *float64 `json:"bestCase,omitempty"`
	WorstCase     *float64 `json:"worstCase,omitempty"`
	PointEstimate *float64 `json:"pointEstimate,omitempty"`
}

func (r Record) Get(s Statistic) *float64 {
	switch s {
	case BestCase:
		return r.BestCase
	case WorstCase:
		return r.WorstCase
	case PointEstimate:
		return r.PointEstimate
	}
	return nil
}

func (r *Record) set(s Statistic, v float64) {
	switch s {
	case BestCase:
		r.BestCase = &v
	case WorstCase:
		r.WorstCase = &v
	case PointEstimate:
		r.PointEstimate = &v
	}
}

// Map returns the record as a map, omitting absent statistics.
func (r Record) Map() map[string]interface{} {
	m := map[string]interface{}{
		"minute": r.Minute,
	}
	for _, s := range Statistics {
		if v := r.Get(s); v != nil {
			m[string(s)] = *v
		}
	}
	return m
}
