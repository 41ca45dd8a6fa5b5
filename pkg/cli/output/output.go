// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package output contains the flags for writing command output.
package output

const (
	FlagOutputUri         = "output-uri"
	FlagOutputFormat      = "output-format"
	FlagOutputCompression = "output-compression"
	FlagOutputPretty      = "output-pretty"
	FlagOutputSorted      = "output-sorted"
	FlagOutputLimit       = "output-limit"
	FlagOutputAppend      = "output-append"
	FlagOutputMkdirs      = "output-mkdirs"

	DefaultOutputUri    = "stdout"
	DefaultOutputFormat = "json"
)

type ErrInvalidFormat struct {
	Value string
}

func (e *ErrInvalidFormat) Error() string {
	return "invalid output format " + e.Value
}

type ErrInvalidCompression struct {
	Value string
}

func (e *ErrInvalidCompression) Error() string {
	return "invalid output compression " + e.Value
}
