// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/analyst/pkg/analysis"
)

func TestValuesFromViper(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitQueryFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--graph-id", "g1",
		"--graph-id-2", "g2",
		"--lat", "38.9",
		"--lon", "-77.03",
		"--attribute", "jobs",
		"--show-iso",
	}))
	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))

	values := ValuesFromViper(v)
	assert.Equal(t, "g1", values.Get("graphId"))
	assert.Equal(t, "g2", values.Get("graphId2"))
	assert.Equal(t, "38.9", values.Get("lat"))
	assert.Equal(t, "TRANSIT,WALK", values.Get("mode"))
	assert.Equal(t, "true", values.Get("showIso"))
	assert.Equal(t, "false", values.Get("showPoints"))
	assert.Empty(t, values.Get("date"))

	p, err := analysis.ParsePanel(nil, "http://backend", values)
	require.NoError(t, err)
	assert.True(t, p.IsComparing())
	assert.True(t, p.ShowIso)
	assert.Equal(t, "jobs", p.Attribute)
}
