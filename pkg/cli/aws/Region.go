// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

import (
	"github.com/spf13/viper"
)

// Region returns the AWS region, falling back to the default region.
func Region(v *viper.Viper) string {
	if region := v.GetString(FlagAwsRegion); len(region) > 0 {
		return region
	}
	return v.GetString(FlagAwsDefaultRegion)
}
