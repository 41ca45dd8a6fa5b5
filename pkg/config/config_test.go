// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViper(t *testing.T) {
	dir, err := ioutil.TempDir("", "analyst-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	configUri := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(configUri, []byte("backend-url: https://analyst.example.com\n"), 0600))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringSlice(FlagConfigUri, []string{}, "")
	cmd.Flags().String("backend-url", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--config-uri", configUri}))

	v, err := NewViper(cmd)
	require.NoError(t, err)
	assert.Equal(t, "https://analyst.example.com", v.GetString("backend-url"))
}
