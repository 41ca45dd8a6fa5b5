// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package cors contains the flags for Cross-Origin Resource Sharing.
package cors

import (
	"github.com/pkg/errors"
)

const (
	FlagCorsOrigin      = "cors-origin"
	FlagCorsCredentials = "cors-credentials"

	CorsOriginWildcard = "*"
)

var (
	ErrMissingOrigin = errors.New("missing CORS origin")
)

type ErrInvalidCredentials struct {
	Value string
}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid value for CORS credentials " + e.Value + ", expecting true or false"
}

type ErrWildcardCredentials struct{}

func (e *ErrWildcardCredentials) Error() string {
	return "CORS credentials cannot be allowed with a wildcard origin"
}
