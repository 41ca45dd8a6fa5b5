// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// ConnectToAWS returns a new AWS session.
// If no access key is given, then the default credential chain is used.
func ConnectToAWS(accessKeyId string, secretAccessKey string, sessionToken string, region string) (*session.Session, error) {
	config := aws.Config{
		MaxRetries: aws.Int(3),
		Region:     aws.String(region),
	}
	if len(accessKeyId) > 0 {
		config.Credentials = credentials.NewStaticCredentials(accessKeyId, secretAccessKey, sessionToken)
	}
	return session.NewSessionWithOptions(session.Options{
		Config: config,
	})
}
