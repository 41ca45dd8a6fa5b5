// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cors

import (
	"github.com/spf13/viper"
)

// CheckCorsConfig checks the CORS configuration.
// Browsers reject credentialed responses that allow any origin.
func CheckCorsConfig(v *viper.Viper) error {
	origin := v.GetString(FlagCorsOrigin)
	if len(origin) == 0 {
		return ErrMissingOrigin
	}
	switch credentials := v.GetString(FlagCorsCredentials); credentials {
	case "false":
	case "true":
		if origin == CorsOriginWildcard {
			return &ErrWildcardCredentials{}
		}
	default:
		return &ErrInvalidCredentials{Value: credentials}
	}
	return nil
}
