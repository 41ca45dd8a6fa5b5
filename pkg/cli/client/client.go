// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package client contains the commands for querying the routing backend.
package client

const (
	CliUse   = "client"
	CliShort = "query the routing backend"
	CliLong  = "query the projects, shapefiles, scenarios, users, and single-point results of the routing backend"

	FlagProjectId = "project-id"
	FlagUserId    = "user-id"
)
