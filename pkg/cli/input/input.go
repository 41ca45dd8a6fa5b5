// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package input contains the flags for reading results objects.
package input

const (
	FlagInputUri         = "input-uri"
	FlagInputCompression = "input-compression"

	DefaultInputUri = "stdin"
)
