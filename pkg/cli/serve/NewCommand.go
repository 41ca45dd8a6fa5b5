// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package serve contains the command for running the analyst http server.
package serve

import (
	"github.com/spf13/cobra"
)

const (
	CliUse   = "serve"
	CliShort = "start the analyst server"
	CliLong  = "start the analyst server, which serves envelope states, cumulative accessibility series, charts, and tile redirects backed by the routing backend"
)

type NewCommandInput struct {
	GitBranch string
	GitCommit string
}

// NewCommand returns a new serve command.
func NewCommand(input *NewCommandInput) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   CliUse,
		DisableFlagsInUseLine: true,
		Short:                 CliShort,
		Long:                  CliLong,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE:                  serveFunction(input.GitBranch, input.GitCommit),
	}
	InitServeFlags(cmd.Flags())
	return cmd
}
