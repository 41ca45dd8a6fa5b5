// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package aws contains the flags and helpers for connecting to AWS.
package aws

const (
	FlagAwsProfile                         = "aws-profile"
	FlagAwsDefaultRegion                   = "aws-default-region"
	FlagAwsRegion                          = "aws-region"
	FlagAwsAccessKeyId                     = "aws-access-key-id"
	FlagAwsSecretAccessKey                 = "aws-secret-access-key"
	FlagAwsSessionToken                    = "aws-session-token"
	FlagAwsSecurityToken                   = "aws-security-token"
	FlagAwsContainerCredentialsRelativeUri = "aws-container-credentials-relative-uri"
)
