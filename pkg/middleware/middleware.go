// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package middleware contains the http middleware of the analyst server.
package middleware

const (
	ContextKeyRequest = "request"
	ContextKeyLog     = "log"
)
