// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package models contains the objects served by the analyst REST API.
package models

const (
	// QuotaWarning is the remaining quota below which a user is nearing their quota.
	QuotaWarning = 100000
)
