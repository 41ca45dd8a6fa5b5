// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// BoundaryHandler responds with the boundary of a project as a GeoJSON feature.
type BoundaryHandler struct {
	*BaseHandler
}

func (h *BoundaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	h.Start(r, h)

	switch r.Method {
	case http.MethodGet:
		b, err := h.Run(r)
		if err == nil {
			w.Header().Set("Content-Type", ContentTypeGeoJSON)
			_, err = w.Write(b)
		}
		if err != nil {
			err = h.RespondWithError(w, r, err, "json")
			if err != nil {
				panic(err)
			}
		}
	default:
		err := h.RespondWithNotImplemented(w, "json")
		if err != nil {
			panic(err)
		}
	}
}

func (h *BoundaryHandler) Run(r *http.Request) ([]byte, error) {
	project, err := h.ClientForRequest(r).Project(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	f, err := project.BoundaryFeature()
	if err != nil {
		return nil, err
	}
	b, err := f.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "error serializing boundary")
	}
	return b, nil
}
