// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

type Bundle struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ProjectId   string   `json:"projectId,omitempty"`
	Filenames   []string `json:"filenames"`
	Status      string   `json:"status"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Failed      bool     `json:"failed,omitempty"`
}

func (b Bundle) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":        b.Id,
		"name":      b.Name,
		"filenames": b.Filenames,
		"status":    b.Status,
	}
}

type Bundles []Bundle

func (b Bundles) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(b))
	for _, x := range b {
		maps = append(maps, x.Map())
	}
	return maps
}
