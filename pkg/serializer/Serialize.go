// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
)

type SerializeInput struct {
	Uri      string
	Alg      string
	Append   bool
	Parents  bool
	S3Client *s3.S3
	Object   interface{}
	Format   string
	Pretty   bool
	Sorted   bool
	Limit    int
}

// Serialize serializes the object with the given format and writes it to the uri.
func Serialize(input *SerializeInput) error {
	b, err := SerializeBytes(input.Object, input.Format, input.Pretty, input.Sorted, input.Limit)
	if err != nil {
		return errors.Wrapf(err, "error serializing object for uri %q", input.Uri)
	}
	return WriteBytes(&WriteBytesInput{
		Bytes:    b,
		Uri:      input.Uri,
		Alg:      input.Alg,
		Append:   input.Append,
		Parents:  input.Parents,
		S3Client: input.S3Client,
	})
}

// SerializeBytes serializes the object with the given format.
// Line-based formats are terminated with a trailing new line.
func SerializeBytes(obj interface{}, format string, pretty bool, sorted bool, limit int) ([]byte, error) {
	if limit == 0 {
		limit = gss.NoLimit
	}
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            obj,
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             limit,
		Pretty:            pretty,
		Sorted:            sorted,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return b, nil
}
