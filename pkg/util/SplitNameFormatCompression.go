// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"path/filepath"
)

var compressionExtensions = map[string]string{
	".gz":  "gzip",
	".sz":  "snappy",
	".bz2": "bzip2",
	".zip": "zip",
}

var formatExtensions = map[string]string{
	".csv":        "csv",
	".tsv":        "tsv",
	".bson":       "bson",
	".json":       "json",
	".jsonl":      "jsonl",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".hcl":        "hcl",
	".properties": "properties",
	".props":      "properties",
	".go":         "go",
	".png":        "png",
	".html":       "html",
}

// SplitNameFormatCompression splits a path into it's basename, format, and compression.
//  - /health.json => ("/health", "json", "")
//  - series.csv.gz => ("series", "csv", "gzip")
//  - /analysis/chart.png => ("/analysis/chart", "png", "")
//  - config.yml => ("config", "yaml", "")
func SplitNameFormatCompression(p string) (string, string, string) {

	compression := ""

	ext := filepath.Ext(p)
	if len(ext) == 0 {
		return p, "", ""
	}

	if c, ok := compressionExtensions[ext]; ok {
		compression = c
		p = p[:len(p)-len(ext)]
		ext = filepath.Ext(p)
		if len(ext) == 0 {
			return p, "", compression
		}
	}

	if format, ok := formatExtensions[ext]; ok {
		return p[:len(p)-len(ext)], format, compression
	}

	return p[:len(p)-len(ext)], "", compression
}
