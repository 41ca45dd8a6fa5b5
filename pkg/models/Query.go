// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

import (
	"sort"
)

// Query is a batch accessibility query over all the points of a shapefile.
type Query struct {
	Id                     string `json:"id"`
	Name                   string `json:"name"`
	ProjectId              string `json:"projectId,omitempty"`
	Mode                   string `json:"mode"`
	OriginShapefileId      string `json:"originShapefileId,omitempty"`
	DestinationShapefileId string `json:"destinationShapefileId,omitempty"`
	AttributeName          string `json:"attributeName,omitempty"`
	ScenarioId             string `json:"scenarioId,omitempty"`
	Status                 string `json:"status,omitempty"`
	TotalPoints            *int   `json:"totalPoints,omitempty"`
	CompletePoints         *int   `json:"completePoints,omitempty"`
	Complete               bool   `json:"complete"`
	Envelope               string `json:"envelope,omitempty"`
}

// Progress returns the fraction of points that are complete, between 0 and 1.
func (q Query) Progress() float64 {
	if q.Complete {
		return 1
	}
	if q.TotalPoints == nil || q.CompletePoints == nil || *q.TotalPoints == 0 {
		return 0
	}
	return float64(*q.CompletePoints) / float64(*q.TotalPoints)
}

func (q Query) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":       q.Id,
		"name":     q.Name,
		"mode":     q.Mode,
		"status":   q.Status,
		"complete": q.Complete,
		"progress": q.Progress(),
	}
}

type Queries []Query

// Sort sorts the queries by name.
func (q Queries) Sort() {
	sort.SliceStable(q, func(i, j int) bool { return q[i].Name < q[j].Name })
}

func (q Queries) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(q))
	for _, x := range q {
		maps = append(maps, x.Map())
	}
	return maps
}
