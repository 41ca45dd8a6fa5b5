// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

import (
	"encoding/json"
	"sort"
)

type Project struct {
	Id              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Boundary        json.RawMessage `json:"boundary,omitempty"`
	DefaultLat      *float64    `json:"defaultLat,omitempty"`
	DefaultLon      *float64    `json:"defaultLon,omitempty"`
	DefaultZoom     *int        `json:"defaultZoom,omitempty"`
	DefaultScenario string      `json:"defaultScenario,omitempty"`
}

func (p Project) Map() map[string]interface{} {
	m := map[string]interface{}{
		"id":   p.Id,
		"name": p.Name,
	}
	if len(p.Description) > 0 {
		m["description"] = p.Description
	}
	if p.DefaultLat != nil && p.DefaultLon != nil {
		m["defaultLat"] = *p.DefaultLat
		m["defaultLon"] = *p.DefaultLon
	}
	if p.DefaultZoom != nil {
		m["defaultZoom"] = *p.DefaultZoom
	}
	if len(p.DefaultScenario) > 0 {
		m["defaultScenario"] = p.DefaultScenario
	}
	return m
}

type Projects []Project

// Sort sorts the projects by name.
func (p Projects) Sort() {
	sort.SliceStable(p, func(i, j int) bool { return p[i].Name < p[j].Name })
}

func (p Projects) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(p))
	for _, x := range p {
		maps = append(maps, x.Map())
	}
	return maps
}
