// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package request contains the query string helpers and the log records of the analyst server.
package request

// Request is a record about a request that can be logged.
type Request interface {
	String() string
	Map() map[string]interface{}
	Serialize(format string) ([]byte, error)
}
