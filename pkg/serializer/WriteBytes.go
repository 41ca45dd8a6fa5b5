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
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

type WriteBytesInput struct {
	Bytes    []byte
	Uri      string
	Alg      string
	Append   bool
	Parents  bool
	S3Client *s3.S3
}

// WriteBytes writes the bytes to the uri, compressed with the given algorithm.
func WriteBytes(input *WriteBytesInput) error {
	err := grw.WriteAllAndClose(&grw.WriteAllAndCloseInput{
		Bytes:    input.Bytes,
		Uri:      input.Uri,
		Alg:      input.Alg,
		Dict:     grw.NoDict,
		Append:   input.Append,
		Parents:  input.Parents,
		S3Client: input.S3Client,
	})
	if err != nil {
		return errors.Wrapf(err, "error writing to uri %q", input.Uri)
	}
	return nil
}
