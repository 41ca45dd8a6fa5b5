// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package result

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/analyst/pkg/histogram"
)

const body = `{
  "data": {
    "jobs.total": {
      "bestCase": {"sums": [10, 20]},
      "worstCase": {"sums": {"1": 5, "3": 5}}
    },
    "people.total": {}
  },
  "properties": {
    "schema": {
      "jobs.total": {"label": "Jobs"}
    }
  }
}`

func TestGetPlotData(t *testing.T) {
	r, err := Parse([]byte(body))
	require.NoError(t, err)

	series, err := GetPlotData(r, "jobs.total")
	require.NoError(t, err)
	require.Len(t, series, histogram.Horizon)

	assert.Equal(t, map[string]interface{}{"minute": 0, "bestCase": 10.0, "worstCase": 0.0}, series[0].Map())
	assert.Equal(t, map[string]interface{}{"minute": 3, "bestCase": 30.0, "worstCase": 10.0}, series[3].Map())
	assert.False(t, series.Has(histogram.PointEstimate))

	empty, err := GetPlotData(r, "people.total")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"minute": 119}, empty[119].Map())
}

func TestGetPlotDataMissingAttribute(t *testing.T) {
	r, err := Parse([]byte(body))
	require.NoError(t, err)

	_, err = GetPlotData(r, "jobs.retail")
	assert.IsType(t, &ErrMissingAttribute{}, err)

	_, err = GetPlotData(nil, "jobs.total")
	assert.Equal(t, ErrMissingData, err)
}

func TestLabel(t *testing.T) {
	r, err := Parse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Jobs", r.Label("jobs.total"))
	assert.Equal(t, "people.total", r.Label("people.total"))
	assert.ElementsMatch(t, []string{"jobs.total", "people.total"}, r.Attributes())
	assert.Equal(t, "jobs.total", AttributeKey("jobs", "total"))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"data": {"jobs.total": {"pointEstimate": {"sums": ["x"]}}}}`))
	assert.IsType(t, &histogram.ErrInvalidCount{}, errors.Cause(err))

	_, err = Parse([]byte(`{"properties": {}}`))
	assert.Equal(t, ErrMissingData, err)
}
