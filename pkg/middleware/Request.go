// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"context"
	"time"
)

// Request is the log record of an http request.
// Handlers add their name, vars, and errors to the record in the request context.
type Request struct {
	Client     string
	Host       string
	Url        string
	Method     string
	Start      *time.Time
	End        *time.Time
	StatusCode int
	Vars       map[string]string
	Handler    string
	Error      error
}

func (r *Request) Map() map[string]interface{} {
	m := map[string]interface{}{
		"client": r.Client,
		"host":   r.Host,
		"url":    r.Url,
		"method": r.Method,
	}
	if r.Start != nil {
		m["start"] = r.Start.Format(time.RFC3339)
	}
	if r.End != nil {
		m["end"] = r.End.Format(time.RFC3339)
	}
	if r.Start != nil && r.End != nil {
		m["duration"] = r.End.Sub(*r.Start).String()
	}
	if r.StatusCode > 0 {
		m["status"] = r.StatusCode
	}
	if len(r.Vars) > 0 {
		m["vars"] = r.Vars
	}
	if len(r.Handler) > 0 {
		m["handler"] = r.Handler
	}
	if r.Error != nil {
		m["error"] = r.Error.Error()
	}
	return m
}

// GetRequest returns the request record from the context, or nil if none.
func GetRequest(ctx context.Context) *Request {
	if v := ctx.Value(ContextKeyRequest); v != nil {
		if req, ok := v.(*Request); ok {
			return req
		}
	}
	return nil
}
