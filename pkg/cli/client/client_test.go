// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

func newBackend() *httptest.Server {
	r := mux.NewRouter()
	r.HandleFunc("/api/project", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": "p2", "name": "Zurich"}, {"id": "p1", "name": "Atlanta"}]`)
	})
	r.HandleFunc("/api/project/{id}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "p1", "name": "Washington", "boundary": {"type": "Point", "coordinates": [-77.03, 38.9]}}`)
	})
	r.HandleFunc("/api/result", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"jobs.total": {"pointEstimate": {"sums": {"0": 5, "2": 3}}}}}`)
	})
	return httptest.NewServer(r)
}

func execute(t *testing.T, args ...string) ([]byte, error) {
	dir, err := ioutil.TempDir("", "analyst-client")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	outputUri := filepath.Join(dir, "output.json")

	cmd := NewCommand()
	logging.InitLoggingFlags(cmd.PersistentFlags())
	cmd.SetArgs(append(args, "--output-uri", outputUri, "--info-destination", "stderr"))
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	return ioutil.ReadFile(outputUri)
}

func TestProjects(t *testing.T) {
	server := newBackend()
	defer server.Close()

	b, err := execute(t, "projects", "--backend-url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "[{\"id\":\"p1\",\"name\":\"Atlanta\"},{\"id\":\"p2\",\"name\":\"Zurich\"}]\n", string(b))
}

func TestShapefilesMissingProject(t *testing.T) {
	server := newBackend()
	defer server.Close()

	_, err := execute(t, "shapefiles", "--backend-url", server.URL)
	assert.Equal(t, &rerrors.ErrMissingRequiredParameter{Name: FlagProjectId}, err)
}

func TestResult(t *testing.T) {
	server := newBackend()
	defer server.Close()

	b, err := execute(t,
		"result",
		"--backend-url", server.URL,
		"--graph-id", "g1",
		"--lat", "38.9",
		"--lon", "-77.03",
		"--category", "jobs",
		"--attribute", "total",
	)
	require.NoError(t, err)
	assert.Contains(t, string(b), "{\"minute\":2,\"pointEstimate\":8,\"scenario\":\"Scenario 1\"}")
}

func TestBoundary(t *testing.T) {
	server := newBackend()
	defer server.Close()

	b, err := execute(t, "boundary", "--backend-url", server.URL, "--project-id", "p1")
	require.NoError(t, err)
	assert.Contains(t, string(b), "\"bbox\":[-77.03,38.9,-77.03,38.9]")
	assert.Contains(t, string(b), "\"name\":\"Washington\"")
}
