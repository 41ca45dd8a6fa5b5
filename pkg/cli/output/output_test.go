// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitOutputFlags(fs, DefaultOutputFormat)
	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	return v
}

func TestCheckOutputConfig(t *testing.T) {
	v := newViper(t)
	assert.NoError(t, CheckOutputConfig(v))

	v.Set(FlagOutputFormat, "docx")
	assert.Equal(t, &ErrInvalidFormat{Value: "docx"}, CheckOutputConfig(v))

	v.Set(FlagOutputFormat, "csv")
	v.Set(FlagOutputCompression, "rar")
	assert.Equal(t, &ErrInvalidCompression{Value: "rar"}, CheckOutputConfig(v))
}

func TestWriteObject(t *testing.T) {
	dir, err := ioutil.TempDir("", "analyst-output")
	require.NoError(t, err)

	v := newViper(t)
	v.Set(FlagOutputUri, filepath.Join(dir, "series.json"))
	err = WriteObject(v, nil, []map[string]interface{}{
		{"minute": 0, "pointEstimate": 5},
		{"minute": 1, "pointEstimate": 5},
	})
	require.NoError(t, err)

	b, err := ioutil.ReadFile(filepath.Join(dir, "series.json"))
	require.NoError(t, err)
	assert.Equal(t, "[{\"minute\":0,\"pointEstimate\":5},{\"minute\":1,\"pointEstimate\":5}]\n", string(b))
}
