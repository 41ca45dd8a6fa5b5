// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package backend

import (
	"net/url"

	"github.com/spf13/viper"
)

// CheckBackendConfig checks the backend configuration.
func CheckBackendConfig(v *viper.Viper) error {
	backendUrl := v.GetString(FlagBackendUrl)
	if len(backendUrl) == 0 {
		return ErrMissingBackendUrl
	}
	u, err := url.Parse(backendUrl)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
		return &ErrInvalidBackendUrl{Value: backendUrl}
	}
	if timeout := v.GetDuration(FlagBackendTimeout); timeout <= 0 {
		return &ErrInvalidBackendTimeout{Value: timeout}
	}
	return nil
}
