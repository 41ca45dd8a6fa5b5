// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

type ErrOutOfRange struct {
	Name  string
	Value interface{}
	Min   interface{}
	Max   interface{}
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("parameter %s with value %v is out of range, expecting a value between %v and %v", e.Name, e.Value, e.Min, e.Max)
}
