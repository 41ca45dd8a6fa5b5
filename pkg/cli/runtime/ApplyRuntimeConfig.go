// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package runtime

import (
	"runtime"

	"github.com/spf13/viper"
)

// ApplyRuntimeConfig sets GOMAXPROCS and returns the value that was set.
func ApplyRuntimeConfig(v *viper.Viper) int {
	maxProcs := v.GetInt(FlagRuntimeMaxProcs)
	if maxProcs == 0 {
		maxProcs = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(maxProcs)
	return maxProcs
}
