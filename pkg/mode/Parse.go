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

// Parse parses a comma-separated list of traverse modes.
// Whitespace around each member is trimmed and members are upper-cased.
// Returns ErrUnknownMode for unknown members and ErrEmptyMode if no members are given.
func Parse(str string) (Set, error) {
	s := Set(make([]string, 0))
	for _, part := range strings.Split(str, Separator) {
		m := strings.ToUpper(strings.TrimSpace(part))
		if len(m) == 0 {
			continue
		}
		if _, ok := knownModes[m]; !ok {
			return nil, &ErrUnknownMode{Value: m}
		}
		if !s.Contains(m) {
			s = append(s, m)
		}
	}
	if len(s) == 0 {
		return nil, ErrEmptyMode
	}
	return s, nil
}
