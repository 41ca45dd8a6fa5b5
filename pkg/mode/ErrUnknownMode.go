// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mode

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyMode = errors.New("mode is empty, expecting at least one traverse mode")
)

type ErrUnknownMode struct {
	Value string
}

func (e *ErrUnknownMode) Error() string {
	return "unknown traverse mode " + e.Value
}
