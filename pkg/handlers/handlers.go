// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package handlers contains the http handlers of the analyst server.
package handlers

const (
	FormatPng     = "png"
	FormatGeoJSON = "geojson"

	ContentTypePng     = "image/png"
	ContentTypeGeoJSON = "application/geo+json"
)
