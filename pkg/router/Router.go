// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package router contains the router of the analyst server.
package router

import (
	"compress/gzip"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"

	"github.com/spatialcurrent/analyst/pkg/client"
	"github.com/spatialcurrent/analyst/pkg/handlers"
	"github.com/spatialcurrent/analyst/pkg/middleware"
)

type Router struct {
	*mux.Router
	Logger     *gsl.Logger
	Client     *client.Client
	BackendUrl string
	Debug      bool
	GitBranch  string
	GitCommit  string
}

type NewRouterInput struct {
	Logger          *gsl.Logger
	Client          *client.Client
	BackendUrl      string
	Debug           bool
	GitBranch       string
	GitCommit       string
	Recover         bool
	Gzip            bool
	Cors            bool
	CorsOrigin      string
	CorsCredentials string
	LoginUrl        string
}

func NewRouter(input *NewRouterInput) *Router {

	r := &Router{
		Router:     mux.NewRouter(),
		Logger:     input.Logger,
		Client:     input.Client,
		BackendUrl: input.BackendUrl,
		Debug:      input.Debug,
		GitBranch:  input.GitBranch,
		GitCommit:  input.GitCommit,
	}

	if input.Recover {
		input.Logger.Debug(map[string]interface{}{"middleware": "recover", "loaded": true})
		r.Use(middleware.RecoverMiddleware(input.Logger))
	}

	r.Use(middleware.RequestMiddleware())

	r.Use(middleware.LogMiddleware(input.Logger))

	if len(input.LoginUrl) > 0 {
		input.Logger.Debug(map[string]interface{}{"middleware": "login", "loaded": true, "url": input.LoginUrl})
		r.Use(middleware.LoginRedirectMiddleware(input.LoginUrl))
	}

	if input.Gzip {
		input.Logger.Debug(map[string]interface{}{"middleware": "gzip", "loaded": true})
		r.Use(gziphandler.MustNewGzipLevelHandler(gzip.DefaultCompression))
	}

	if input.Cors {
		input.Logger.Debug(map[string]interface{}{"middleware": "cors", "loaded": true})
		r.Use(middleware.CorsMiddleware(input.CorsOrigin, input.CorsCredentials))
	}

	r.AddHandler("health", []string{"GET"}, []string{"/health.{ext}"}, &handlers.HealthHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("formats", []string{"GET"}, []string{"/formats.{ext}"}, &handlers.ObjectHandler{
		Object:      map[string]interface{}{"formats": gss.Formats},
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("envelope", []string{"GET"}, []string{"/envelope.{ext}"}, &handlers.EnvelopeHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("plot", []string{"POST"}, []string{"/plot.{ext}"}, &handlers.PlotHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("analysis_plot", []string{"GET"}, []string{"/analysis/plot.{ext}"}, &handlers.AnalysisHandler{
		BaseHandler: r.NewBaseHandler(),
		Output:      handlers.OutputPlot,
	})

	r.AddHandler("analysis_chart", []string{"GET"}, []string{"/analysis/chart.png"}, &handlers.AnalysisHandler{
		BaseHandler: r.NewBaseHandler(),
		Output:      handlers.OutputChart,
	})

	r.AddHandler("analysis_urls", []string{"GET"}, []string{"/analysis/urls.{ext}"}, &handlers.AnalysisHandler{
		BaseHandler: r.NewBaseHandler(),
		Output:      handlers.OutputUrls,
	})

	r.AddHandler("tile", []string{"GET"}, []string{"/tiles/{layer}/{z}/{x}/{y}.png"}, &handlers.TileHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("boundary", []string{"GET"}, []string{"/projects/{id}/boundary.geojson"}, &handlers.BoundaryHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	routes := []struct {
		Name  string
		Path  string
		Fetch handlers.FetchFunc
	}{
		{Name: "projects", Path: "/projects.{ext}", Fetch: handlers.FetchProjects},
		{Name: "exemplar_day", Path: "/projects/{id}/exemplarDay.{ext}", Fetch: handlers.FetchExemplarDay},
		{Name: "shapefiles", Path: "/projects/{id}/shapefiles.{ext}", Fetch: handlers.FetchShapefiles},
		{Name: "scenarios", Path: "/projects/{id}/scenarios.{ext}", Fetch: handlers.FetchScenarios},
		{Name: "user", Path: "/user.{ext}", Fetch: handlers.FetchCurrentUser},
	}

	for _, route := range routes {
		r.AddHandler(route.Name, []string{"GET"}, []string{route.Path}, &handlers.ProjectHandler{
			BaseHandler: r.NewBaseHandler(),
			Fetch:       route.Fetch,
		})
	}

	return r
}

func (r *Router) NewBaseHandler() *handlers.BaseHandler {
	return &handlers.BaseHandler{
		Logger:     r.Logger,
		Client:     r.Client,
		BackendUrl: r.BackendUrl,
		Debug:      r.Debug,
		GitBranch:  r.GitBranch,
		GitCommit:  r.GitCommit,
	}
}

func (r *Router) AddHandler(name string, methods []string, paths []string, handler http.Handler) {
	for _, path := range paths {
		r.Methods(methods...).Name(name).Path(path).Handler(handler)
	}
}
