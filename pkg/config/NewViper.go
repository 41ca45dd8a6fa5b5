// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/util"
)

// NewViper returns a viper configuration bound to the flags of the command.
// Environment variables override flags, e.g., BACKEND_URL for --backend-url.
// Config files given by --config-uri are merged in order and may be stored on AWS S3.
func NewViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configUris := v.GetStringSlice(FlagConfigUri)
	if len(configUris) > 0 {
		s3Client, err := aws.NewS3ClientFromViper(v, configUris...)
		if err != nil {
			return nil, errors.Wrap(err, "error creating S3 client for config")
		}
		err = util.MergeConfigs(v, configUris, s3Client)
		if err != nil {
			return nil, errors.Wrap(err, "error loading config")
		}
	}

	return v, nil
}
