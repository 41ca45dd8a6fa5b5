// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"fmt"
	"time"

	"github.com/spatialcurrent/analyst/pkg/query"
)

// ResultRequest records the single-point results fetched for a request.
type ResultRequest struct {
	Queries   []query.SinglePointQuery
	Attribute string
	Duration  time.Duration
}

func (rr ResultRequest) String() string {
	return fmt.Sprintf("fetched %d result(s) for attribute %q in %s", len(rr.Queries), rr.Attribute, rr.Duration)
}

func (rr ResultRequest) Map() map[string]interface{} {
	queries := make([]map[string]interface{}, 0, len(rr.Queries))
	for _, q := range rr.Queries {
		queries = append(queries, q.Map())
	}
	return map[string]interface{}{
		"result": map[string]interface{}{
			"queries":   queries,
			"attribute": rr.Attribute,
			"duration":  rr.Duration.String(),
		},
	}
}

func (rr ResultRequest) Serialize(format string) ([]byte, error) {
	return serialize(rr.Map(), format)
}
