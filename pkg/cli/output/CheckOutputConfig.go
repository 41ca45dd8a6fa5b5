// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"
)

// CheckOutputConfig checks the output configuration.
func CheckOutputConfig(v *viper.Viper) error {
	if format := v.GetString(FlagOutputFormat); !contains(gss.Formats, format) {
		return &ErrInvalidFormat{Value: format}
	}
	if compression := v.GetString(FlagOutputCompression); len(compression) > 0 && compression != "none" && !contains(grw.Algorithms, compression) {
		return &ErrInvalidCompression{Value: compression}
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, x := range values {
		if x == value {
			return true
		}
	}
	return false
}
