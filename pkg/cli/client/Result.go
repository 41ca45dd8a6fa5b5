// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"context"

	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

// Result fetches the results of the configured query and returns the cumulative series as rows.
// When comparing, the rows of both scenarios are returned.
func Result(ctx context.Context, v *viper.Viper, fetcher analysis.Fetcher) ([]map[string]interface{}, error) {
	p, err := cliquery.NewPanelFromViper(v, fetcher)
	if err != nil {
		return nil, err
	}
	if len(p.Attribute) == 0 {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: cliquery.FlagAttribute}
	}
	if err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	view, err := p.Render()
	if err != nil {
		return nil, err
	}
	return view.Rows(), nil
}
