// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"net/http"
)

var CorsMiddleware = func(corsOrigin string, corsCredentials string) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", corsOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", corsCredentials)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.ServeHTTP(w, r)
		})
	}
}
