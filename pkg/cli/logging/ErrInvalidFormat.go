// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"fmt"
)

type ErrInvalidFormat struct {
	Flag  string
	Value string
}

func (e *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid format %q for flag %q", e.Value, e.Flag)
}
