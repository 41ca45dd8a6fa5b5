// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package result

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingData = errors.New("result is missing data")
)

type ErrMissingAttribute struct {
	Attribute string
}

func (e *ErrMissingAttribute) Error() string {
	return "result has no data for attribute " + e.Attribute
}
