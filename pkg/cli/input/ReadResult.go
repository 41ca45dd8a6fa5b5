// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"

	"github.com/spatialcurrent/analyst/pkg/result"
)

// ReadResult reads and parses the results object at the uri.
func ReadResult(uri string, alg string, s3Client *s3.S3) (*result.Result, error) {
	r, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        uri,
		Alg:        alg,
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
		S3Client:   s3Client,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening results at uri %q", uri)
	}

	b, err := r.ReadAllAndClose()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading results at uri %q", uri)
	}

	res, err := result.Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing results at uri %q", uri)
	}

	return res, nil
}
