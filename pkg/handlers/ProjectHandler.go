// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spatialcurrent/analyst/pkg/client"
	"github.com/spatialcurrent/analyst/pkg/request"
)

// FetchFunc fetches an object from the backend for the route variables.
type FetchFunc func(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error)

// ProjectHandler proxies a project object from the backend.
type ProjectHandler struct {
	*BaseHandler
	Fetch FetchFunc
}

func (h *ProjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	pretty, _ := request.NewQueryString(r).FirstBool("pretty")

	switch r.Method {
	case http.MethodGet:
		obj, err := h.Fetch(r.Context(), h.ClientForRequest(r), mux.Vars(r))
		if err == nil {
			err = h.RespondWithObject(&Response{
				Writer:     w,
				StatusCode: http.StatusOK,
				Format:     format,
				Object:     obj,
				Pretty:     pretty,
			})
		}
		if err != nil {
			err = h.RespondWithError(w, r, err, format)
			if err != nil {
				panic(err)
			}
		}
	default:
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			panic(err)
		}
	}

}
