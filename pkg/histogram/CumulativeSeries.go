// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

// CumulativeSeries is an ordered list of records, one per minute.
type CumulativeSeries []Record

// Has returns true if the statistic is present in the series.
func (cs CumulativeSeries) Has(s Statistic) bool {
	return len(cs) > 0 && cs[0].Get(s) != nil
}

// Values returns the values of the statistic, or nil if the statistic is absent.
func (cs CumulativeSeries) Values(s Statistic) []float64 {
	if !cs.Has(s) {
		return nil
	}
	values := make([]float64, 0, len(cs))
	for _, r := range cs {
		values = append(values, *r.Get(s))
	}
	return values
}

// Minutes returns the minute of each record as a float64, for plotting.
func (cs CumulativeSeries) Minutes() []float64 {
	minutes := make([]float64, 0, len(cs))
	for _, r := range cs {
		minutes = append(minutes, float64(r.Minute))
	}
	return minutes
}

// Max returns the largest value across all present statistics.
func (cs CumulativeSeries) Max() float64 {
	max := 0.0
	for _, r := range cs {
		for _, s := range Statistics {
			if v := r.Get(s); v != nil && *v > max {
				max = *v
			}
		}
	}
	return max
}

// Maps returns the series as a slice of maps, suitable for serialization with gss.
func (cs CumulativeSeries) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(cs))
	for _, r := range cs {
		maps = append(maps, r.Map())
	}
	return maps
}
