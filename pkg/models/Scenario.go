// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

const (
	// DefaultScenarioId is the id of the scenario selected by default.
	DefaultScenarioId = "default"
)

type Scenario struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	ProjectId    string   `json:"projectId,omitempty"`
	BundleId     string   `json:"bundleId,omitempty"`
	BannedRoutes []string `json:"bannedRoutes,omitempty"`
}

func (s Scenario) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":       s.Id,
		"name":     s.Name,
		"selected": s.Id == DefaultScenarioId,
	}
}

type Scenarios []Scenario

func (s Scenarios) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(s))
	for _, x := range s {
		maps = append(maps, x.Map())
	}
	return maps
}
