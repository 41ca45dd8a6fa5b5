// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package plot contains the command for converting a results object into a cumulative accessibility series.
package plot

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/input"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/config"
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/result"
)

const (
	CliUse   = "plot"
	CliShort = "convert a results object into a cumulative accessibility series"
	CliLong  = "convert a results object, as returned by /api/result, into the cumulative series of an attribute, one record per minute for 120 minutes"
)

// NewCommand returns a new plot command.
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
			if err := output.CheckOutputConfig(v); err != nil {
				return err
			}
			s3Client, err := aws.NewS3ClientFromViper(v, v.GetString(input.FlagInputUri), v.GetString(output.FlagOutputUri))
			if err != nil {
				return err
			}
			res, err := input.ReadResult(v.GetString(input.FlagInputUri), v.GetString(input.FlagInputCompression), s3Client)
			if err != nil {
				return err
			}
			rows, err := Rows(v, res)
			if err != nil {
				return err
			}
			return output.WriteObject(v, s3Client, rows)
		},
	}
	flag := cmd.Flags()
	input.InitInputFlags(flag)
	flag.String(cliquery.FlagCategory, "", "the category of the attribute.  If set, the attribute key is <category>.<attribute>.")
	flag.String(cliquery.FlagAttribute, "", "the attribute to plot")
	output.InitOutputFlags(flag, output.DefaultOutputFormat)
	return cmd
}

// Key returns the attribute key from the category and attribute flags.
func Key(v *viper.Viper) (string, error) {
	attribute := v.GetString(cliquery.FlagAttribute)
	if len(attribute) == 0 {
		return "", &rerrors.ErrMissingRequiredParameter{Name: cliquery.FlagAttribute}
	}
	if category := v.GetString(cliquery.FlagCategory); len(category) > 0 {
		return result.AttributeKey(category, attribute), nil
	}
	return attribute, nil
}

// Rows returns the cumulative series of the configured attribute.
func Rows(v *viper.Viper, res *result.Result) ([]map[string]interface{}, error) {
	key, err := Key(v)
	if err != nil {
		return nil, err
	}
	series, err := result.GetPlotData(res, key)
	if err != nil {
		return nil, err
	}
	return series.Maps(), nil
}
