// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/serializer"
)

// WriteObject serializes the object and writes it to the configured output uri.
func WriteObject(v *viper.Viper, s3Client *s3.S3, obj interface{}) error {
	return serializer.Serialize(&serializer.SerializeInput{
		Uri:      v.GetString(FlagOutputUri),
		Alg:      v.GetString(FlagOutputCompression),
		Append:   v.GetBool(FlagOutputAppend),
		Parents:  v.GetBool(FlagOutputMkdirs),
		S3Client: s3Client,
		Object:   obj,
		Format:   v.GetString(FlagOutputFormat),
		Pretty:   v.GetBool(FlagOutputPretty),
		Sorted:   v.GetBool(FlagOutputSorted),
		Limit:    v.GetInt(FlagOutputLimit),
	})
}

// WriteBytes writes the bytes uncompressed to the configured output uri.
func WriteBytes(v *viper.Viper, s3Client *s3.S3, b []byte) error {
	return serializer.WriteBytes(&serializer.WriteBytesInput{
		Bytes:    b,
		Uri:      v.GetString(FlagOutputUri),
		Parents:  v.GetBool(FlagOutputMkdirs),
		S3Client: s3Client,
	})
}
