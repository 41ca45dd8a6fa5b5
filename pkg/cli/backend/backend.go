// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package backend contains the flags for connecting to the routing backend.
package backend

import (
	"time"

	"github.com/pkg/errors"
)

const (
	FlagBackendUrl             = "backend-url"
	FlagBackendAuthorization   = "backend-authorization"
	FlagBackendTimeout         = "backend-timeout"
	FlagBackendCacheExpiration = "backend-cache-expiration"
	FlagLoginUrl               = "login-url"

	DefaultBackendTimeout         = time.Second * 60
	DefaultBackendCacheExpiration = time.Minute * 5
)

var (
	ErrMissingBackendUrl = errors.New("missing backend url")
)

type ErrInvalidBackendUrl struct {
	Value string
}

func (e *ErrInvalidBackendUrl) Error() string {
	return "invalid backend url " + e.Value + ", expecting an absolute http or https url"
}

type ErrInvalidBackendTimeout struct {
	Value time.Duration
}

func (e *ErrInvalidBackendTimeout) Error() string {
	return "invalid backend timeout " + e.Value.String() + ", must be greater than zero"
}
