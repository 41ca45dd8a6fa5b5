// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package config builds the viper configuration shared by the analyst commands.
package config

const (
	FlagConfigUri = "config-uri"
)
