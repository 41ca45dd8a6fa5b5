// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

import (
	"fmt"
	"sort"
)

// ShapeAttribute is a column of a shapefile.
type ShapeAttribute struct {
	Name      string `json:"name"`
	FieldName string `json:"fieldName"`
	Numeric   bool   `json:"numeric"`
	Hide      bool   `json:"hide,omitempty"`
}

// AttributeName returns the human-readable name of the attribute.
// If the name differs from the field name, the field name is appended in parentheses.
func AttributeName(attr ShapeAttribute) string {
	if attr.Name == attr.FieldName {
		return attr.Name
	}
	return fmt.Sprintf("%s (%s)", attr.Name, attr.FieldName)
}

type Shapefile struct {
	Id              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	ProjectId       string           `json:"projectId"`
	CategoryId      string           `json:"categoryId"`
	ShapeAttributes []ShapeAttribute `json:"shapeAttributes"`
	FeatureCount    int              `json:"featureCount"`
}

// NumericAttributes returns the numeric attributes sorted by name.
// Only numeric attributes can be used for analysis.
func (s Shapefile) NumericAttributes() []ShapeAttribute {
	attrs := make([]ShapeAttribute, 0, len(s.ShapeAttributes))
	for _, a := range s.ShapeAttributes {
		if a.Numeric {
			attrs = append(attrs, a)
		}
	}
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

// VisibleAttributes returns the numeric attributes that are not hidden, as field name and display name.
func (s Shapefile) VisibleAttributes() []map[string]interface{} {
	out := make([]map[string]interface{}, 0)
	for _, a := range s.NumericAttributes() {
		if a.Hide {
			continue
		}
		out = append(out, map[string]interface{}{
			"fieldName": a.FieldName,
			"name":      AttributeName(a),
		})
	}
	return out
}

func (s Shapefile) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":           s.Id,
		"name":         s.Name,
		"projectId":    s.ProjectId,
		"categoryId":   s.CategoryId,
		"featureCount": s.FeatureCount,
		"attributes":   s.VisibleAttributes(),
	}
}

type Shapefiles []Shapefile

// Sort sorts the shapefiles by name.
func (s Shapefiles) Sort() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Name < s[j].Name })
}

// Get returns the shapefile with the given id.
func (s Shapefiles) Get(id string) (Shapefile, bool) {
	for _, x := range s {
		if x.Id == id {
			return x, true
		}
	}
	return Shapefile{}, false
}

func (s Shapefiles) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(s))
	for _, x := range s {
		maps = append(maps, x.Map())
	}
	return maps
}
