// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"
)

// CheckLoggingConfig checks the logging configuration.
func CheckLoggingConfig(v *viper.Viper) error {
	for _, flag := range []string{FlagInfoFormat, FlagErrorFormat} {
		format := v.GetString(flag)
		if !stringSliceContains(gss.Formats, format) {
			return &ErrInvalidFormat{Flag: flag, Value: format}
		}
	}
	return nil
}

func stringSliceContains(values []string, value string) bool {
	for _, x := range values {
		if x == value {
			return true
		}
	}
	return false
}
