// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

import (
	"github.com/spf13/pflag"
)

// InitAwsFlags initializes the AWS flags.
func InitAwsFlags(flag *pflag.FlagSet) {
	flag.String(FlagAwsProfile, "", "AWS Profile")
	flag.String(FlagAwsDefaultRegion, "", "AWS Default Region")
	flag.String(FlagAwsRegion, "", "AWS Region")
	flag.String(FlagAwsAccessKeyId, "", "AWS Access Key ID")
	flag.String(FlagAwsSecretAccessKey, "", "AWS Secret Access Key")
	flag.String(FlagAwsSessionToken, "", "AWS Session Token")
	flag.String(FlagAwsSecurityToken, "", "AWS Security Token")
	flag.String(FlagAwsContainerCredentialsRelativeUri, "", "AWS Container Credentials Relative URI")
}
