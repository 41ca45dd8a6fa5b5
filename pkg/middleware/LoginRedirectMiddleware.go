// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"net/http"
	"strings"
)

// loginWriter replaces an unauthorized response with a redirect to the login page.
type loginWriter struct {
	http.ResponseWriter
	loginUrl   string
	redirected bool
}

func (w *loginWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusUnauthorized {
		w.redirected = true
		w.ResponseWriter.Header().Set("Location", w.loginUrl)
		w.ResponseWriter.WriteHeader(http.StatusFound)
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loginWriter) Write(b []byte) (int, error) {
	if w.redirected {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// LoginRedirectMiddleware redirects browsers to the login page when a handler responds with 401.
// Requests that do not accept html keep the 401 response.
var LoginRedirectMiddleware = func(loginUrl string) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept"), "text/html") {
				h.ServeHTTP(w, r)
				return
			}
			h.ServeHTTP(&loginWriter{ResponseWriter: w, loginUrl: loginUrl}, r)
		})
	}
}
