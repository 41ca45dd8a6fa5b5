// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package cli contains the analyst command line interface.
package cli

import (
	"os"
	"strings"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/analyst/pkg/cli/algorithms"
	"github.com/spatialcurrent/analyst/pkg/cli/chart"
	"github.com/spatialcurrent/analyst/pkg/cli/client"
	"github.com/spatialcurrent/analyst/pkg/cli/envelope"
	"github.com/spatialcurrent/analyst/pkg/cli/formats"
	"github.com/spatialcurrent/analyst/pkg/cli/plot"
	"github.com/spatialcurrent/analyst/pkg/cli/serve"
	"github.com/spatialcurrent/analyst/pkg/cli/urls"
	"github.com/spatialcurrent/analyst/pkg/cli/version"
)

// NewRootCommand returns the analyst root command with every subcommand.
func NewRootCommand(gitBranch string, gitCommit string) *cobra.Command {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:           "analyst",
		SilenceErrors: true,
		Short:         "transportation accessibility analysis on top of a routing backend",
		Long: `Analyst charts how many opportunities are reachable from a point by transit, walking, biking, or driving.
Through go-reader-writer, supports the follow compression algorithms: ` + strings.Join(grw.Algorithms, ", ") + `
Through go-simple-serializer, supports the follow file formats: ` + strings.Join(gss.Formats, ", "),
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nanalyst completion > /etc/bash_completion.d/analyst"
	} else if _, err := os.Stat("/usr/local/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nanalyst completion > /usr/local/etc/bash_completion.d/analyst"
	} else {
		completionCommandLong = "To install completion scripts run:\nanalyst completion > .../bash_completion.d/analyst"
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long:  completionCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Serve Command
	//

	rootCmd.AddCommand(serve.NewCommand(&serve.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Analysis Commands
	//

	rootCmd.AddCommand(
		envelope.NewCommand(),
		plot.NewCommand(),
		urls.NewCommand(),
		chart.NewCommand(),
	)

	//
	// Client Command
	//

	rootCmd.AddCommand(client.NewCommand())

	//
	// Algorithms and Formats Commands
	//

	rootCmd.AddCommand(algorithms.NewCommand(), formats.NewCommand())

	return rootCmd
}

// Execute handles command line calls to analyst.
func Execute(gitBranch string, gitCommit string) error {
	return NewRootCommand(gitBranch, gitCommit).Execute()
}
