// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package backend

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitBackendFlags(fs)
	InitLoginFlags(fs)
	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	return v
}

func TestCheckBackendConfig(t *testing.T) {
	v := newViper(t)
	assert.Equal(t, ErrMissingBackendUrl, CheckBackendConfig(v))

	v.Set(FlagBackendUrl, "analyst.example.com")
	assert.Equal(t, &ErrInvalidBackendUrl{Value: "analyst.example.com"}, CheckBackendConfig(v))

	v.Set(FlagBackendUrl, "https://analyst.example.com/")
	assert.NoError(t, CheckBackendConfig(v))

	v.Set(FlagBackendTimeout, time.Duration(0))
	assert.Equal(t, &ErrInvalidBackendTimeout{Value: 0}, CheckBackendConfig(v))
}

func TestNewClientFromViper(t *testing.T) {
	v := newViper(t)
	v.Set(FlagBackendUrl, "https://analyst.example.com/")
	v.Set(FlagBackendAuthorization, "secret")
	c := NewClientFromViper(v, nil)
	assert.Equal(t, "https://analyst.example.com", c.BaseUrl)
	assert.Equal(t, "secret", c.Authorization)
	assert.Equal(t, DefaultBackendTimeout, c.HttpClient.Timeout)
	assert.NotNil(t, c.Cache)
}

func TestLoginUrl(t *testing.T) {
	v := newViper(t)
	v.Set(FlagBackendUrl, "https://analyst.example.com/")
	assert.Equal(t, "https://analyst.example.com/login", LoginUrl(v))
	v.Set(FlagLoginUrl, "https://sso.example.com")
	assert.Equal(t, "https://sso.example.com", LoginUrl(v))
}
