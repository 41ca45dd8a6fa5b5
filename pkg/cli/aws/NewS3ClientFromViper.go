// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/util"
)

// NewS3ClientFromViper returns a new S3 client if any of the given uris point to AWS S3.
// Otherwise, returns nil.
func NewS3ClientFromViper(v *viper.Viper, uris ...string) (*s3.S3, error) {
	if !util.HasS3Prefix(uris...) {
		return nil, nil
	}

	accessKeyId := v.GetString(FlagAwsAccessKeyId)
	sessionToken := v.GetString(FlagAwsSessionToken)
	if len(sessionToken) == 0 {
		sessionToken = v.GetString(FlagAwsSecurityToken)
	}

	awsSession, err := util.ConnectToAWS(accessKeyId, v.GetString(FlagAwsSecretAccessKey), sessionToken, Region(v))
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to AWS")
	}

	return s3.New(awsSession), nil
}
