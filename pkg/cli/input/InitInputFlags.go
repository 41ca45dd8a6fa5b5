// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"github.com/spf13/pflag"
)

// InitInputFlags initializes the input flags.
func InitInputFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagInputUri, "i", DefaultInputUri, "the uri of the results object, e.g., stdin, a local path, or s3://bucket/key")
	flag.String(FlagInputCompression, "", "the input compression algorithm")
}

// InitInputsFlags initializes the input flags for commands that accept more than one results object.
func InitInputsFlags(flag *pflag.FlagSet) {
	flag.StringSliceP(FlagInputUri, "i", []string{}, "the uris of the results objects, e.g., a local path or s3://bucket/key")
	flag.String(FlagInputCompression, "", "the input compression algorithm")
}
