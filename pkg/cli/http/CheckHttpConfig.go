// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"github.com/spf13/viper"
)

// CheckHttpConfig checks the http configuration.
func CheckHttpConfig(v *viper.Viper) error {
	if len(v.GetString(FlagHttpAddress)) == 0 {
		return ErrMissingAddress
	}
	if timeoutIdle := v.GetDuration(FlagHttpTimeoutIdle); timeoutIdle < MinIdleTimeout {
		return &ErrInvalidTimeoutIdle{Value: timeoutIdle, Min: MinIdleTimeout}
	}
	if timeoutRead := v.GetDuration(FlagHttpTimeoutRead); timeoutRead < MinReadTimeout {
		return &ErrInvalidTimeoutRead{Value: timeoutRead, Min: MinReadTimeout}
	}
	if timeoutWrite := v.GetDuration(FlagHttpTimeoutWrite); timeoutWrite < MinWriteTimeout {
		return &ErrInvalidTimeoutWrite{Value: timeoutWrite, Min: MinWriteTimeout}
	}
	if v.GetBool(FlagHttpGracefulShutdown) {
		if wait := v.GetDuration(FlagHttpGracefulShutdownWait); wait < MinGracefulShutdownWait {
			return &ErrInvalidGracefulShutdownWait{Value: wait, Min: MinGracefulShutdownWait}
		}
	}
	return nil
}
