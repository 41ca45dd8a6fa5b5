// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

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
	InitHttpFlags(fs)
	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	return v
}

func TestCheckHttpConfig(t *testing.T) {
	v := newViper(t)
	assert.NoError(t, CheckHttpConfig(v))

	v.Set(FlagHttpTimeoutRead, time.Second)
	assert.Equal(t, &ErrInvalidTimeoutRead{Value: time.Second, Min: MinReadTimeout}, CheckHttpConfig(v))
}

func TestCheckHttpConfigAddress(t *testing.T) {
	v := newViper(t)
	v.Set(FlagHttpAddress, "")
	assert.Equal(t, ErrMissingAddress, CheckHttpConfig(v))
}

func TestCheckHttpConfigGracefulShutdown(t *testing.T) {
	v := newViper(t)
	v.Set(FlagHttpGracefulShutdownWait, time.Second)
	assert.NoError(t, CheckHttpConfig(v))

	v.Set(FlagHttpGracefulShutdown, true)
	err := CheckHttpConfig(v)
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidGracefulShutdownWait{}, err)
}
