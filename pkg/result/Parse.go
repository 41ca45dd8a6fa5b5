// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package result

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Parse decodes a result from JSON.
// Malformed histograms are rejected with the validation errors of the histogram package.
func Parse(b []byte) (*Result, error) {
	r := &Result{}
	err := json.Unmarshal(b, r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing result")
	}
	if r.Data == nil {
		return nil, ErrMissingData
	}
	return r, nil
}
