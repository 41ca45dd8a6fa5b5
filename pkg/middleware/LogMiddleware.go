// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
)

// LogMiddleware logs the request record once the request is served.
// Handlers can log earlier by calling Do on the *sync.Once stored in the context.
var LogMiddleware = func(logger *gsl.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := &sync.Once{}
			ctx := context.WithValue(r.Context(), ContextKeyLog, log)
			sw := &statusWriter{ResponseWriter: w}
			defer func() {
				log.Do(func() {
					if req := GetRequest(ctx); req != nil {
						end := time.Now()
						req.End = &end
						req.StatusCode = sw.status
						logger.Info(req.Map())
					}
				})
			}()
			h.ServeHTTP(sw, r.WithContext(ctx))
		})
	}
}
