// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package urls contains the command for printing the tile overlay and GIS download urls of a query.
package urls

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/config"
)

const (
	CliUse   = "urls"
	CliShort = "print the tile overlay and GIS download urls of a query"
	CliLong  = "print the surface and transit tile overlay urls and the GIS download url of a single-point query, without fetching results"
)

// NewCommand returns a new urls command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   CliUse,
		DisableFlagsInUseLine: true,
		Short:                 CliShort,
		Long:                  CliLong,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd)
			if err != nil {
				return errors.Wrap(err, "error initializing viper")
			}
			if err := backend.CheckBackendConfig(v); err != nil {
				return err
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return err
			}
			obj, err := Urls(v)
			if err != nil {
				return err
			}
			s3Client, err := aws.NewS3ClientFromViper(v, v.GetString(output.FlagOutputUri))
			if err != nil {
				return err
			}
			return output.WriteObject(v, s3Client, obj)
		},
	}
	flag := cmd.Flags()
	backend.InitBackendFlags(flag)
	cliquery.InitQueryFlags(flag)
	output.InitOutputFlags(flag, output.DefaultOutputFormat)
	return cmd
}

// Urls returns the overlays of the configured query.
func Urls(v *viper.Viper) (map[string]interface{}, error) {
	p, err := cliquery.NewPanelFromViper(v, nil)
	if err != nil {
		return nil, err
	}
	return p.Overlays().Map(), nil
}
