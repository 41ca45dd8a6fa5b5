// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/cors"
	"github.com/spatialcurrent/analyst/pkg/cli/http"
	"github.com/spatialcurrent/analyst/pkg/router"
)

type NewRouterInput struct {
	Viper     *viper.Viper
	Logger    *gsl.Logger
	GitBranch string
	GitCommit string
}

// NewRouter returns the analyst router configured from viper.
func NewRouter(input *NewRouterInput) *router.Router {
	v := input.Viper
	return router.NewRouter(&router.NewRouterInput{
		Logger:          input.Logger,
		Client:          backend.NewClientFromViper(v, input.Logger),
		BackendUrl:      v.GetString(backend.FlagBackendUrl),
		Debug:           v.GetBool(http.FlagHttpMiddlewareDebug),
		GitBranch:       input.GitBranch,
		GitCommit:       input.GitCommit,
		Recover:         v.GetBool(http.FlagHttpMiddlewareRecover),
		Gzip:            v.GetBool(http.FlagHttpMiddlewareGzip),
		Cors:            v.GetBool(http.FlagHttpMiddlewareCors),
		CorsOrigin:      v.GetString(cors.FlagCorsOrigin),
		CorsCredentials: v.GetString(cors.FlagCorsCredentials),
		LoginUrl:        backend.LoginUrl(v),
	})
}
