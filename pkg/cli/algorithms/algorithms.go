// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package algorithms contains the command for printing the supported compression algorithms.
package algorithms

import (
	"os"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/analyst/pkg/serializer"
)

const (
	CliUse   = "algorithms"
	CliShort = "print compression algorithms supported by analyst through go-reader-writer"
	CliLong  = "print compression algorithms supported by analyst through go-reader-writer, for use with the input, output, and logging compression flags"

	FlagFormat = "format"

	DefaultFormat = "json"
)

// NewCommand returns a new algorithms command.
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
			b, err := serializer.SerializeBytes(grw.Algorithms, format, false, false, 0)
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
