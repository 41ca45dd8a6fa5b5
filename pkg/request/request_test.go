// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/core"
)

func TestQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/analysis/plot.json?lat=38.9&z=12&pretty&gzip=false&mode=WALK&bad=x", nil)
	qs := NewQueryString(r)

	lat, err := qs.FirstFloat("lat")
	require.NoError(t, err)
	assert.Equal(t, 38.9, lat)

	z, err := qs.FirstInt("z")
	require.NoError(t, err)
	assert.Equal(t, 12, z)

	pretty, err := qs.FirstBool("pretty")
	require.NoError(t, err)
	assert.True(t, pretty)

	gz, err := qs.FirstBool("gzip")
	require.NoError(t, err)
	assert.False(t, gz)

	_, err = qs.FirstString("missing")
	assert.True(t, IsMissing(err))

	_, err = qs.FirstInt("bad")
	assert.False(t, IsMissing(err))
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, errors.Cause(err))

	assert.Equal(t, "WALK", qs.FirstStringOrDefault("mode", "TRANSIT"))
	assert.Equal(t, "TRANSIT", qs.FirstStringOrDefault("other", "TRANSIT"))
	assert.True(t, qs.Has("mode"))
	assert.False(t, qs.Has("other"))
}

func TestRecords(t *testing.T) {
	tr := TileRequest{Layer: "surface", Tile: core.Tile{Z: 1, X: 0, Y: 1}, Location: "http://backend/tile/surface"}
	b, err := tr.Serialize("json")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"location":"http://backend/tile/surface"`)

	cr := CacheRequest{Key: "k", Hit: true}
	assert.Equal(t, "cache hit for key k", cr.String())
}
