// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"net/url"

	"github.com/spf13/viper"
)

// ValuesFromViper returns the query parameters for the flags that have a value.
func ValuesFromViper(v *viper.Viper) url.Values {
	values := url.Values{}
	for flag, parameter := range parameters {
		if str := v.GetString(flag); len(str) > 0 {
			values.Set(parameter, str)
		}
	}
	return values
}
