// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package backend

import (
	"github.com/spf13/pflag"
)

// InitBackendFlags initializes the backend flags.
func InitBackendFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagBackendUrl, "u", "", "the base url of the routing backend, e.g., https://analyst.example.com")
	flag.String(FlagBackendAuthorization, "", "bearer token sent to the routing backend")
	flag.Duration(FlagBackendTimeout, DefaultBackendTimeout, "timeout for requests to the routing backend")
	flag.Duration(FlagBackendCacheExpiration, DefaultBackendCacheExpiration, "how long results from the routing backend are cached")
}

// InitLoginFlags initializes the flags for redirecting unauthorized browsers.
func InitLoginFlags(flag *pflag.FlagSet) {
	flag.String(FlagLoginUrl, "", "url browsers are redirected to when the routing backend returns 401.  Defaults to the backend login page.")
}
