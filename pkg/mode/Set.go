// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mode

import (
	"strings"
)

// Set is a parsed, de-duplicated set of traverse modes in input order.
type Set []string

// IsTransit returns true if any mode in the set uses public transport.
func (s Set) IsTransit() bool {
	for _, m := range s {
		if _, ok := transitModes[m]; ok {
			return true
		}
	}
	return false
}

func (s Set) Contains(m string) bool {
	for _, x := range s {
		if x == m {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	return strings.Join(s, Separator)
}
