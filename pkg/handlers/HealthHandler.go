// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"

	"github.com/spatialcurrent/analyst/pkg/request"
)

type HealthHandler struct {
	*BaseHandler
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	pretty, _ := request.NewQueryString(r).FirstBool("pretty")

	switch r.Method {
	case http.MethodGet:
		obj := map[string]interface{}{
			"status":    "ok",
			"gitBranch": h.GitBranch,
			"gitCommit": h.GitCommit,
		}
		err := h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     obj,
			Pretty:     pretty,
		})
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
