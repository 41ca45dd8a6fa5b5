// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package chart contains the command for rendering accessibility charts as PNG images.
package chart

const (
	CliUse   = "chart"
	CliShort = "render the accessibility chart of a query as a PNG image"
	CliLong  = "render the cumulative accessibility chart of a single-point query as a PNG image.  The results are read from the input uris, one per scenario, or fetched from the routing backend."

	FlagWidth  = "width"
	FlagHeight = "height"
)
