// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/histogram"
	"github.com/spatialcurrent/analyst/pkg/query"
)

func newTestServer(t *testing.T, results *int32) *httptest.Server {
	r := mux.NewRouter()
	r.HandleFunc("/api/project", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bearer secret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[{"id": "p2", "name": "Zurich"}, {"id": "p1", "name": "Atlanta"}]`)
	})
	r.HandleFunc("/api/project/{id}/exemplarDay", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "p1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `"2014-12-16"`)
	})
	r.HandleFunc("/api/shapefile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p1", r.URL.Query().Get("projectId"))
		fmt.Fprint(w, `[{"id": "b", "name": "Blocks"}, {"id": "a", "name": "Addresses"}]`)
	})
	r.HandleFunc("/api/user/self", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.HandleFunc("/api/scenario", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "boom")
	})
	r.HandleFunc("/api/result", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(results, 1)
		fmt.Fprint(w, `{"data": {"jobs.total": {"pointEstimate": {"sums": {"0": 5, "2": 3}}}}}`)
	})
	return httptest.NewServer(r)
}

func TestClient(t *testing.T) {
	results := int32(0)
	server := newTestServer(t, &results)
	defer server.Close()

	c := New(server.URL+"/", nil, nil).WithCredentials("secret", "")
	ctx := context.Background()

	projects, err := c.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Atlanta", projects[0].Name)

	day, err := c.ExemplarDay(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2014, time.December, 16, 0, 0, 0, 0, time.UTC), day)

	_, err = c.ExemplarDay(ctx, "p9")
	assert.IsType(t, &rerrors.ErrMissingObject{}, err)

	shapefiles, err := c.Shapefiles(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "a", shapefiles[0].Id)

	_, err = c.CurrentUser(ctx)
	assert.IsType(t, &ErrUnauthorized{}, err)

	_, err = c.Scenarios(ctx, "p1")
	require.IsType(t, &ErrUnexpectedStatus{}, err)
	assert.Equal(t, http.StatusInternalServerError, err.(*ErrUnexpectedStatus).StatusCode)
	assert.Equal(t, "boom", err.(*ErrUnexpectedStatus).Body)
}

func TestClientResult(t *testing.T) {
	results := int32(0)
	server := newTestServer(t, &results)
	defer server.Close()

	c := New(server.URL, server.Client(), nil)
	q := query.SinglePointQuery{
		GraphId:   "g1",
		Lat:       38.9,
		Lon:       -77.03,
		Mode:      "WALK",
		WalkSpeed: query.DefaultWalkSpeed,
		BikeSpeed: query.DefaultBikeSpeed,
		Which:     envelope.PointEstimate,
		Date:      time.Date(2014, time.December, 16, 0, 0, 0, 0, time.UTC),
		FromTime:  query.DefaultFromTime,
		Shapefile: "shp1",
	}

	r, err := c.Result(context.Background(), q)
	require.NoError(t, err)
	require.Contains(t, r.Data, "jobs.total")
	assert.True(t, r.Data["jobs.total"].Has(histogram.PointEstimate))

	_, err = c.Result(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&results))

	q.Lat = 100
	_, err = c.Result(context.Background(), q)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&results))
}

func TestClientResultCacheCredentials(t *testing.T) {
	results := int32(0)
	r := mux.NewRouter()
	r.HandleFunc("/api/result", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "bearer alice" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		atomic.AddInt32(&results, 1)
		fmt.Fprint(w, `{"data": {"jobs.total": {"pointEstimate": {"sums": {"0": 5}}}}}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	base := New(server.URL, server.Client(), nil)
	q := query.SinglePointQuery{
		GraphId:   "g1",
		Lat:       38.9,
		Lon:       -77.03,
		Mode:      "WALK",
		WalkSpeed: query.DefaultWalkSpeed,
		BikeSpeed: query.DefaultBikeSpeed,
		Which:     envelope.PointEstimate,
		Date:      time.Date(2014, time.December, 16, 0, 0, 0, 0, time.UTC),
		FromTime:  query.DefaultFromTime,
		Shapefile: "shp1",
	}

	_, err := base.WithCredentials("alice", "").Result(context.Background(), q)
	require.NoError(t, err)

	_, err = base.WithCredentials("", "").Result(context.Background(), q)
	assert.IsType(t, &ErrUnauthorized{}, err)

	_, err = base.WithCredentials("bob", "").Result(context.Background(), q)
	assert.IsType(t, &ErrUnauthorized{}, err)

	_, err = base.WithCredentials("alice", "").Result(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&results))
}
