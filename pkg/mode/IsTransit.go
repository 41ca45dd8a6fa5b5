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

// IsTransit returns true if the comma-separated mode string contains at least one transit mode.
// Unknown members are ignored.
func IsTransit(str string) bool {
	for _, part := range strings.Split(str, Separator) {
		if _, ok := transitModes[strings.ToUpper(strings.TrimSpace(part))]; ok {
			return true
		}
	}
	return false
}
