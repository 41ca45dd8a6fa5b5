// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/cli/backend"
)

// NewPanelFromViper returns an analysis panel with the settings of the query flags.
func NewPanelFromViper(v *viper.Viper, fetcher analysis.Fetcher) (*analysis.Panel, error) {
	return analysis.ParsePanel(fetcher, v.GetString(backend.FlagBackendUrl), ValuesFromViper(v))
}
