// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"strings"
)

// HasS3Prefix returns true if any of the uris is an AWS S3 uri.
func HasS3Prefix(uris ...string) bool {
	for _, uri := range uris {
		if strings.HasPrefix(uri, "s3://") {
			return true
		}
	}
	return false
}
