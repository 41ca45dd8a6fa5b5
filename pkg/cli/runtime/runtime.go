// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package runtime contains the flags for the Go runtime.
package runtime

const (
	FlagRuntimeMaxProcs = "runtime-max-procs"

	DefaultMaxProcs = 1
)
