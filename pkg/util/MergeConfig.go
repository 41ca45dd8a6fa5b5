// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spf13/viper"
)

// MergeConfig merges a config from the given uri into the Viper config.
// The uri can be a local path or an "s3://" uri, in which case s3Client must not be nil.
func MergeConfig(v *viper.Viper, configUri string, s3Client *s3.S3) error {

	_, configFormat, compression := SplitNameFormatCompression(configUri)
	if len(compression) > 0 {
		return errors.New("cannot have compression for config uri " + configUri)
	}
	if len(configFormat) == 0 {
		return errors.New("cannot infer format for config uri " + configUri)
	}

	v.SetConfigType(configFormat)

	configReader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        configUri,
		Alg:        "",
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
		S3Client:   s3Client,
	})
	if err != nil {
		return errors.Wrapf(err, "error opening config at uri %q", configUri)
	}

	configBytes, err := configReader.ReadAllAndClose()
	if err != nil {
		return errors.Wrapf(err, "error reading config at uri %q", configUri)
	}

	if len(configBytes) > 0 {
		err = v.MergeConfig(bytes.NewReader(configBytes))
		if err != nil {
			return errors.Wrapf(err, "error merging config at uri %q", configUri)
		}
	}

	return nil
}
