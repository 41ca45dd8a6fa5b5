// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package runtime

import (
	"github.com/spf13/viper"
)

// CheckRuntimeConfig checks the Runtime configuration.
func CheckRuntimeConfig(v *viper.Viper) error {
	if maxProcs := v.GetInt(FlagRuntimeMaxProcs); maxProcs < 0 {
		return &ErrInvalidMaxProcs{Value: maxProcs}
	}
	return nil
}
