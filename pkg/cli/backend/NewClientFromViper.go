// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package backend

import (
	"net/http"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/client"
)

// NewClientFromViper returns a backend client from the viper configuration.
func NewClientFromViper(v *viper.Viper, logger *gsl.Logger) *client.Client {
	c := client.New(v.GetString(FlagBackendUrl), &http.Client{Timeout: v.GetDuration(FlagBackendTimeout)}, logger)
	if expiration := v.GetDuration(FlagBackendCacheExpiration); expiration > 0 {
		c.Cache = cache.New(expiration, expiration*2)
	}
	if authorization := v.GetString(FlagBackendAuthorization); len(authorization) > 0 {
		return c.WithCredentials(authorization, "")
	}
	return c
}

// LoginUrl returns the configured login url or the backend login page.
func LoginUrl(v *viper.Viper) string {
	if loginUrl := v.GetString(FlagLoginUrl); len(loginUrl) > 0 {
		return loginUrl
	}
	return strings.TrimRight(v.GetString(FlagBackendUrl), "/") + "/login"
}
