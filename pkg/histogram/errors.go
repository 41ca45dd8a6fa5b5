// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

import (
	"fmt"
)

type ErrInvalidCount struct {
	Minute int
	Value  string
}

func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("invalid count %s at minute %d, expecting a number", e.Value, e.Minute)
}

type ErrInvalidMinute struct {
	Value string
}

func (e *ErrInvalidMinute) Error() string {
	return fmt.Sprintf("invalid minute %q, expecting a non-negative integer", e.Value)
}

type ErrInvalidSums struct {
	Value string
}

func (e *ErrInvalidSums) Error() string {
	return fmt.Sprintf("invalid sums %s, expecting an array or an object", e.Value)
}
