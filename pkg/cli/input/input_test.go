// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResult(t *testing.T) {
	dir, err := ioutil.TempDir("", "analyst-input")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	uri := filepath.Join(dir, "result.json")
	require.NoError(t, ioutil.WriteFile(uri, []byte(`{"data":{"c.jobs":{"pointEstimate":{"sums":[1,2]}}},"properties":{"schema":{"c.jobs":{"label":"Jobs"}}}}`), 0600))

	res, err := ReadResult(uri, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jobs", res.Label("c.jobs"))

	_, err = ReadResult(filepath.Join(dir, "missing.json"), "", nil)
	assert.Error(t, err)
}
