// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLoggingConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitLoggingFlags(fs)
	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))

	assert.NoError(t, CheckLoggingConfig(v))

	v.Set(FlagErrorFormat, "xml2")
	err := CheckLoggingConfig(v)
	require.Error(t, err)
	assert.Equal(t, &ErrInvalidFormat{Flag: FlagErrorFormat, Value: "xml2"}, err)
}
