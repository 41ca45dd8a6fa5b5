// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package client is a client for the analyst REST API and the single-point result endpoint of the routing backend.
package client

import (
	"time"
)

const (
	PathProject   = "/api/project"
	PathShapefile = "/api/shapefile"
	PathScenario  = "/api/scenario"
	PathBundle    = "/api/bundle"
	PathQuery     = "/api/query"
	PathUser      = "/api/user"
	PathLedger    = "/api/ledger"

	ParameterProjectId = "projectId"

	DefaultCacheExpiration = 5 * time.Minute
	DefaultCacheCleanup    = 10 * time.Minute
)
