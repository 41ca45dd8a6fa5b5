// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package result decodes single-point results from the routing backend and pivots them into chart data.
package result

import (
	"github.com/spatialcurrent/analyst/pkg/histogram"
)

// Field describes one attribute in the result schema.
type Field struct {
	Label string `json:"label"`
}

type Properties struct {
	Id     string           `json:"id,omitempty"`
	Schema map[string]Field `json:"schema"`
}

// Result is a single-point result, keyed by "<categoryId>.<attributeId>".
type Result struct {
	Data       map[string]histogram.Histogram `json:"data"`
	Properties Properties                     `json:"properties"`
}

// Label returns the human-readable label of the attribute, falling back to the attribute key.
func (r *Result) Label(attribute string) string {
	if r != nil {
		if f, ok := r.Properties.Schema[attribute]; ok && len(f.Label) > 0 {
			return f.Label
		}
	}
	return attribute
}

// Attributes returns the attribute keys present in the result data.
func (r *Result) Attributes() []string {
	if r == nil {
		return []string{}
	}
	keys := make([]string, 0, len(r.Data))
	for k := range r.Data {
		keys = append(keys, k)
	}
	return keys
}

// AttributeKey joins a shapefile category and attribute into a result data key.
func AttributeKey(categoryId string, attributeId string) string {
	return categoryId + "." + attributeId
}
