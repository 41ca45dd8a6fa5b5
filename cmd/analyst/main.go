// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Analyst is the command line interface and http server for single-point accessibility analysis.
//
// Usage
//
// Use `analyst help` to see full help documentation.
//
//	analyst [flags]
//	analyst [command]
//
// Building
//
//	go build -ldflags "-X main.gitBranch=$(git branch | grep \* | cut -d ' ' -f2) -X main.gitCommit=$(git rev-list -1 HEAD)" ./cmd/analyst
package main

import (
	"fmt"
	"os"

	"github.com/spatialcurrent/analyst/pkg/cli"
)

var gitBranch string
var gitCommit string

func main() {
	if err := cli.Execute(gitBranch, gitCommit); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
