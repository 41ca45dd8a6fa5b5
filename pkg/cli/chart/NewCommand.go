// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package chart

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/input"
	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/config"
)

// NewCommand returns a new chart command.
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

			inputUris := v.GetStringSlice(input.FlagInputUri)

			s3Client, err := aws.NewS3ClientFromViper(v, append([]string{v.GetString(output.FlagOutputUri)}, inputUris...)...)
			if err != nil {
				return err
			}

			var in chart.Input
			if len(inputUris) > 0 {
				in, err = InputFromFiles(v, s3Client)
				if err != nil {
					return err
				}
			} else {
				if err := backend.CheckBackendConfig(v); err != nil {
					return err
				}
				logger := logging.NewLoggerFromViper(v)
				in, err = InputFromBackend(context.Background(), v, backend.NewClientFromViper(v, logger))
				logger.Flush()
				if err != nil {
					return err
				}
			}

			buf := new(bytes.Buffer)
			if err := chart.Render(buf, in); err != nil {
				return errors.Wrap(err, "error rendering chart")
			}

			return output.WriteBytes(v, s3Client, buf.Bytes())
		},
	}
	flag := cmd.Flags()
	input.InitInputsFlags(flag)
	backend.InitBackendFlags(flag)
	cliquery.InitQueryFlags(flag)
	flag.Int(FlagWidth, chart.DefaultWidth, "the width of the chart in pixels")
	flag.Int(FlagHeight, chart.DefaultHeight, "the height of the chart in pixels")
	output.InitBytesOutputFlags(flag)
	return cmd
}
