// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

import (
	"fmt"
)

type ErrUnknownOption struct {
	Value string
}

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("unknown envelope option %q, expecting one of %v", e.Value, Options)
}

type ErrDisabledOption struct {
	Which Which
}

func (e *ErrDisabledOption) Error() string {
	return "envelope option " + string(e.Which) + " is disabled for the current mode"
}
