// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package version contains the command for printing the version of analyst.
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	CliUse   = "version"
	CliShort = "print version information to stdout"
	CliLong  = "print version information to stdout"
)

type NewCommandInput struct {
	GitBranch string
	GitCommit string
}

// NewCommand returns a new version command.
func NewCommand(input *NewCommandInput) *cobra.Command {
	return &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		Long:  CliLong,
		Run: func(cmd *cobra.Command, args []string) {
			if len(input.GitBranch) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Branch: %s\n", input.GitBranch)
			}
			if len(input.GitCommit) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", input.GitCommit)
			}
		},
	}
}
