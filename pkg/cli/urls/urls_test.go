// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package urls

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
)

func TestUrls(t *testing.T) {
	v := viper.New()
	require.NoError(t, v.BindPFlags(NewCommand().Flags()))
	v.Set(backend.FlagBackendUrl, "http://backend")
	v.Set(cliquery.FlagGraphId, "g1")
	v.Set(cliquery.FlagLat, "38.9")
	v.Set(cliquery.FlagLon, "-77.03")
	v.Set(cliquery.FlagShowTransit, true)

	obj, err := Urls(v)
	require.NoError(t, err)
	assert.Equal(t, false, obj["ready"])
	assert.True(t, strings.HasPrefix(obj["surfaceTileUrl"].(string), "http://backend/tile/surface?z={z}&x={x}&y={y}"))
	assert.Equal(t, "http://backend/tile/transit?z={z}&x={x}&y={y}&scenarioId=g1", obj["transitTileUrl"])
	assert.Contains(t, obj, "gisUrl")

	v.Set(cliquery.FlagLat, "")
	_, err = Urls(v)
	assert.Error(t, err)
}
