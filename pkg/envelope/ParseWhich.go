// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

import (
	"strings"
)

// ParseWhich parses an envelope option, ignoring case and surrounding whitespace.
func ParseWhich(str string) (Which, error) {
	s := Which(strings.ToUpper(strings.TrimSpace(str)))
	for _, w := range Options {
		if s == w {
			return w, nil
		}
	}
	return None, &ErrUnknownOption{Value: str}
}
