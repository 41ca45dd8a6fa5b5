// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	"github.com/spatialcurrent/analyst/pkg/client"
	"github.com/spatialcurrent/analyst/pkg/config"
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

// RunFunc returns the object to write to the output.
// Bytes are written as is.
type RunFunc func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error)

type NewClientCommandInput struct {
	Use     string
	Short   string
	Project bool // requires --project-id
	Run     RunFunc
}

// NewClientCommand returns a command that runs a request against the backend and writes the response to the output.
func NewClientCommand(input *NewClientCommandInput) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   input.Use,
		DisableFlagsInUseLine: true,
		Short:                 input.Short,
		Long:                  input.Short,
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
			if input.Project && len(v.GetString(FlagProjectId)) == 0 {
				return &rerrors.ErrMissingRequiredParameter{Name: FlagProjectId}
			}

			logger := logging.NewLoggerFromViper(v)
			defer logger.Flush()

			obj, err := input.Run(context.Background(), v, backend.NewClientFromViper(v, logger))
			if err != nil {
				return err
			}

			s3Client, err := aws.NewS3ClientFromViper(v, v.GetString(output.FlagOutputUri))
			if err != nil {
				return err
			}
			if b, ok := obj.([]byte); ok {
				return output.WriteBytes(v, s3Client, b)
			}
			return output.WriteObject(v, s3Client, obj)
		},
	}
	if input.Project {
		cmd.Flags().String(FlagProjectId, "", "the id of the project")
	}
	return cmd
}
