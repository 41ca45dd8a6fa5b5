// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/pflag"
)

// InitOutputFlags initializes the output flags.
func InitOutputFlags(flag *pflag.FlagSet, defaultOutputFormat string) {
	flag.StringP(FlagOutputUri, "o", DefaultOutputUri, "the output uri, e.g., stdout, a local path, or s3://bucket/key")
	flag.String(FlagOutputCompression, "", "the output compression algorithm")
	flag.StringP(FlagOutputFormat, "f", defaultOutputFormat, "the output format")
	flag.BoolP(FlagOutputPretty, "p", false, "output pretty format")
	flag.Bool(FlagOutputSorted, false, "sort output keys")
	flag.Int(FlagOutputLimit, gss.NoLimit, "maximum number of objects to send to output")
	flag.Bool(FlagOutputAppend, false, "append to output files")
	flag.Bool(FlagOutputMkdirs, false, "make directories if missing for output files")
}

// InitBytesOutputFlags initializes the output flags for commands that write images or other preformatted bytes.
func InitBytesOutputFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagOutputUri, "o", DefaultOutputUri, "the output uri, e.g., stdout, a local path, or s3://bucket/key")
	flag.Bool(FlagOutputMkdirs, false, "make directories if missing for output files")
}
