// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boundary = `{"type":"Polygon","coordinates":[[[-77.1,38.8],[-76.9,38.8],[-76.9,39.0],[-77.1,39.0],[-77.1,38.8]]]}`

func TestBoundaryFeature(t *testing.T) {
	p := Project{Id: "p1", Name: "Washington", Boundary: json.RawMessage(boundary)}

	f, err := p.BoundaryFeature()
	require.NoError(t, err)
	assert.Equal(t, []float64{-77.1, 38.8, -76.9, 39.0}, f.BoundingBox)
	assert.Equal(t, "Washington", f.Properties["name"])

	assert.True(t, p.Contains(38.9, -77.0))
	assert.False(t, p.Contains(40.7, -74.0))
}

func TestBoundaryMissing(t *testing.T) {
	p := Project{Id: "p1"}
	_, err := p.BoundaryFeature()
	assert.Equal(t, ErrMissingBoundary, err)
	assert.True(t, p.Contains(40.7, -74.0))
}

func TestProjectUnmarshalBoundary(t *testing.T) {
	p := Project{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Washington","boundary":`+boundary+`}`), &p))
	g, err := p.BoundaryGeometry()
	require.NoError(t, err)
	assert.Equal(t, "Polygon", string(g.Type))
}
