// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

import (
	"math"

	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

var (
	ErrMissingBoundary = errors.New("project has no boundary")
)

// BoundaryGeometry returns the GeoJSON geometry of the project boundary.
func (p Project) BoundaryGeometry() (*geojson.Geometry, error) {
	if len(p.Boundary) == 0 || string(p.Boundary) == "null" {
		return nil, ErrMissingBoundary
	}
	g, err := geojson.UnmarshalGeometry(p.Boundary)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing boundary of project %q", p.Id)
	}
	return g, nil
}

// BoundaryFeature returns the project boundary as a GeoJSON feature with the project id, name, and default view as properties.
// The bounding box of the feature is set from the geometry.
func (p Project) BoundaryFeature() (*geojson.Feature, error) {
	g, err := p.BoundaryGeometry()
	if err != nil {
		return nil, err
	}
	f := geojson.NewFeature(g)
	f.ID = p.Id
	f.BoundingBox = Bounds(g)
	for k, v := range p.Map() {
		f.SetProperty(k, v)
	}
	return f, nil
}

// Bounds returns the bounding box of the geometry as [west, south, east, north].
// Returns nil if the geometry has no coordinates.
func Bounds(g *geojson.Geometry) []float64 {
	bbox := []float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	found := false
	extend := func(c []float64) {
		if len(c) < 2 {
			return
		}
		found = true
		bbox[0] = math.Min(bbox[0], c[0])
		bbox[1] = math.Min(bbox[1], c[1])
		bbox[2] = math.Max(bbox[2], c[0])
		bbox[3] = math.Max(bbox[3], c[1])
	}
	var walk func(g *geojson.Geometry)
	walk = func(g *geojson.Geometry) {
		switch g.Type {
		case geojson.GeometryPoint:
			extend(g.Point)
		case geojson.GeometryMultiPoint, geojson.GeometryLineString:
			coordinates := g.MultiPoint
			if g.Type == geojson.GeometryLineString {
				coordinates = g.LineString
			}
			for _, c := range coordinates {
				extend(c)
			}
		case geojson.GeometryMultiLineString, geojson.GeometryPolygon:
			lines := g.MultiLineString
			if g.Type == geojson.GeometryPolygon {
				lines = g.Polygon
			}
			for _, l := range lines {
				for _, c := range l {
					extend(c)
				}
			}
		case geojson.GeometryMultiPolygon:
			for _, polygon := range g.MultiPolygon {
				for _, ring := range polygon {
					for _, c := range ring {
						extend(c)
					}
				}
			}
		case geojson.GeometryCollection:
			for _, child := range g.Geometries {
				walk(child)
			}
		}
	}
	walk(g)
	if !found {
		return nil
	}
	return bbox
}

// Contains returns true if the point is within the bounding box of the project boundary.
// Projects without a boundary contain every point.
func (p Project) Contains(lat float64, lon float64) bool {
	g, err := p.BoundaryGeometry()
	if err != nil {
		return true
	}
	bbox := Bounds(g)
	if bbox == nil {
		return true
	}
	return lon >= bbox[0] && lat >= bbox[1] && lon <= bbox[2] && lat <= bbox[3]
}
