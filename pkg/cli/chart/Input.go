// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package chart

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/cli/input"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/cli/plot"
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/result"
)

// InputFromFiles returns the chart of the results objects at the input uris, one series per scenario.
func InputFromFiles(v *viper.Viper, s3Client *s3.S3) (chart.Input, error) {
	key, err := plot.Key(v)
	if err != nil {
		return chart.Input{}, err
	}

	in := chart.Input{
		Width:  v.GetInt(FlagWidth),
		Height: v.GetInt(FlagHeight),
	}
	for i, uri := range v.GetStringSlice(input.FlagInputUri) {
		res, err := input.ReadResult(uri, v.GetString(input.FlagInputCompression), s3Client)
		if err != nil {
			return chart.Input{}, err
		}
		series, err := result.GetPlotData(res, key)
		if err != nil {
			return chart.Input{}, err
		}
		if i == 0 {
			in.Title = chart.Title(res.Label(key))
		}
		in.Series = append(in.Series, chart.NamedSeries{Name: fmt.Sprintf("Scenario %d", i+1), Series: series})
	}
	return in, nil
}

// InputFromBackend returns the chart of the configured query, with the results fetched from the backend.
func InputFromBackend(ctx context.Context, v *viper.Viper, fetcher analysis.Fetcher) (chart.Input, error) {
	p, err := cliquery.NewPanelFromViper(v, fetcher)
	if err != nil {
		return chart.Input{}, err
	}
	if len(p.Attribute) == 0 {
		return chart.Input{}, &rerrors.ErrMissingRequiredParameter{Name: cliquery.FlagAttribute}
	}
	if err := p.Refresh(ctx); err != nil {
		return chart.Input{}, err
	}
	view, err := p.Render()
	if err != nil {
		return chart.Input{}, err
	}
	return view.ChartInput(v.GetInt(FlagWidth), v.GetInt(FlagHeight)), nil
}
