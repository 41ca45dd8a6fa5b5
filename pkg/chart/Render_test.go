// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/analyst/pkg/histogram"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func counts(sums histogram.Sums) *histogram.Counts {
	return &histogram.Counts{Sums: sums}
}

func TestRender(t *testing.T) {
	transit := histogram.Accumulate(histogram.Histogram{
		BestCase:  counts(histogram.Sums{0: 10, 5: 20}),
		WorstCase: counts(histogram.Sums{3: 5, 10: 15}),
	}, histogram.Horizon)
	walk := histogram.Accumulate(histogram.Histogram{
		PointEstimate: counts(histogram.Sums{0: 5, 2: 3}),
	}, histogram.Horizon)

	buf := new(bytes.Buffer)
	err := Render(buf, Input{
		Title: Title("Jobs"),
		Series: []NamedSeries{
			{Name: "Scenario 1", Series: transit},
			{Name: "Scenario 2", Series: walk},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader))
}

func TestRenderEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	err := Render(buf, Input{Title: "Empty"})
	assert.Equal(t, ErrNoSeries, err)

	err = Render(buf, Input{Series: []NamedSeries{{Name: "none", Series: histogram.Accumulate(histogram.Histogram{}, histogram.Horizon)}}})
	assert.Equal(t, ErrNoSeries, err)
}

func TestBuildSeries(t *testing.T) {
	band := histogram.Accumulate(histogram.Histogram{
		BestCase:  counts(histogram.Sums{0: 1}),
		WorstCase: counts(histogram.Sums{1: 1}),
	}, histogram.Horizon)
	bands, lines := buildSeries(0, NamedSeries{Name: "a", Series: band})
	require.Len(t, bands, 1)
	assert.Len(t, lines, 2)
	b, ok := bands[0].(BandSeries)
	require.True(t, ok)
	assert.NoError(t, b.Validate())
	assert.Equal(t, band.Values(histogram.BestCase), b.Upper)
	assert.Equal(t, band.Values(histogram.WorstCase), b.Lower)
	assert.Equal(t, uint8(BandAlpha), b.Style.FillColor.A)
	for _, l := range lines {
		assert.True(t, l.GetStyle().FillColor.IsZero())
	}

	single := histogram.Accumulate(histogram.Histogram{
		WorstCase:     counts(histogram.Sums{1: 1}),
		PointEstimate: counts(histogram.Sums{1: 1}),
	}, histogram.Horizon)
	bands, lines = buildSeries(1, NamedSeries{Name: "b", Series: single})
	assert.Len(t, bands, 0)
	assert.Len(t, lines, 2)
}

func TestBandSeriesValidate(t *testing.T) {
	b := BandSeries{Name: "a", XValues: []float64{0, 1}, Upper: []float64{1, 2}, Lower: []float64{0}}
	assert.Error(t, b.Validate())
}

func TestRenderComparisonBands(t *testing.T) {
	s1 := histogram.Accumulate(histogram.Histogram{
		BestCase:  counts(histogram.Sums{0: 10, 5: 20}),
		WorstCase: counts(histogram.Sums{3: 5, 10: 15}),
	}, histogram.Horizon)
	s2 := histogram.Accumulate(histogram.Histogram{
		BestCase:  counts(histogram.Sums{0: 5, 5: 30}),
		WorstCase: counts(histogram.Sums{2: 5, 20: 20}),
	}, histogram.Horizon)

	buf := new(bytes.Buffer)
	err := Render(buf, Input{
		Title:  Title("Jobs"),
		Series: []NamedSeries{{Name: "Scenario 1", Series: s1}, {Name: "Scenario 2", Series: s2}},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader))
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(0, 0))
	assert.NoError(t, CheckSize(MaxWidth, MaxHeight))
	assert.IsType(t, &rerrors.ErrOutOfRange{}, CheckSize(MaxWidth+1, 10))
	assert.IsType(t, &rerrors.ErrOutOfRange{}, CheckSize(10, MaxHeight+1))
	assert.IsType(t, &rerrors.ErrOutOfRange{}, CheckSize(-1, 10))

	walk := histogram.Accumulate(histogram.Histogram{
		PointEstimate: counts(histogram.Sums{0: 5}),
	}, histogram.Horizon)
	err := Render(new(bytes.Buffer), Input{
		Series: []NamedSeries{{Name: "Scenario 1", Series: walk}},
		Width:  100000,
		Height: 100000,
	})
	assert.IsType(t, &rerrors.ErrOutOfRange{}, err)
}
