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

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/core"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/request"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

const (
	LayerSurface           = "surface"
	LayerSurfaceComparison = "surfaceComparison"
	LayerTransit           = "transit"
	LayerTransitComparison = "transitComparison"
)

// TileHandler redirects a tile of an overlay to the routing backend.
type TileHandler struct {
	*BaseHandler
}

// Template returns the tile url template of the layer for the query string.
func (h *TileHandler) Template(layer string, qs request.QueryString) (string, error) {
	switch layer {
	case LayerSurface, LayerSurfaceComparison:
		if layer == LayerSurfaceComparison && !qs.Has(query.ParameterGraphId2) {
			return "", &rerrors.ErrMissingRequiredParameter{Name: query.ParameterGraphId2}
		}
		if layer == LayerSurface {
			qs.Params.Del(query.ParameterGraphId2)
		}
		p, err := analysis.ParsePanel(nil, h.BackendUrl, qs.Params)
		if err != nil {
			return "", err
		}
		return p.Overlays().SurfaceTileUrl, nil
	case LayerTransit:
		scenarioId, err := qs.FirstString(query.ParameterScenarioId)
		if err != nil {
			return "", &rerrors.ErrMissingRequiredParameter{Name: query.ParameterScenarioId}
		}
		return query.TransitTileURL(h.BackendUrl, scenarioId), nil
	case LayerTransitComparison:
		scenarioId1, err := qs.FirstString(query.ParameterScenarioId1)
		if err != nil {
			return "", &rerrors.ErrMissingRequiredParameter{Name: query.ParameterScenarioId1}
		}
		scenarioId2, err := qs.FirstString(query.ParameterScenarioId2)
		if err != nil {
			return "", &rerrors.ErrMissingRequiredParameter{Name: query.ParameterScenarioId2}
		}
		return query.TransitComparisonTileURL(h.BackendUrl, scenarioId1, scenarioId2), nil
	}
	return "", &rerrors.ErrMissingObject{Type: "layer", Id: layer}
}

func (h *TileHandler) Run(w http.ResponseWriter, r *http.Request, vars map[string]string) error {
	tile, err := core.NewTileFromRequestVars(vars)
	if err != nil {
		return err
	}

	template, err := h.Template(vars["layer"], request.NewQueryString(r))
	if err != nil {
		return err
	}

	location := tile.Expand(template)
	h.LogInfo(request.TileRequest{Layer: vars["layer"], Tile: tile, Location: location})

	http.Redirect(w, r, location, http.StatusFound)
	return nil
}

func (h *TileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	switch r.Method {
	case http.MethodGet:
		err := h.Run(w, r, mux.Vars(r))
		if err != nil {
			err = h.RespondWithError(w, r, err, format)
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
