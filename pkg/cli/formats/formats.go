// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package formats contains the command for printing the supported serialization formats.
package formats

import (
	"os"

	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/analyst/pkg/serializer"
)

const (
	CliUse   = "formats"
	CliShort = "print formats supported by analyst through go-simple-serializer"
	CliLong  = "print formats supported by analyst through go-simple-serializer, for use with the output format flags and the {ext} of server paths"

	FlagFormat = "format"

	DefaultFormat = "json"
)

// NewCommand returns a new formats command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           CliUse,
		Short:         CliShort,
		Long:          CliLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString(FlagFormat)
			if err != nil {
				return err
			}
			b, err := serializer.SerializeBytes(gss.Formats, format, false, false, 0)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(b)
			return err
		},
	}
	cmd.Flags().StringP(FlagFormat, "f", DefaultFormat, "output format")
	return cmd
}
