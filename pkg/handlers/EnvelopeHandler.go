// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"

	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/mode"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/request"
)

// EnvelopeHandler responds with the envelope parameters available for a mode.
type EnvelopeHandler struct {
	*BaseHandler
}

func (h *EnvelopeHandler) Run(qs request.QueryString) (map[string]interface{}, error) {
	s, err := mode.Parse(qs.FirstStringOrDefault(query.ParameterMode, mode.Default))
	if err != nil {
		return nil, err
	}

	state, _ := envelope.Transition(envelope.State{}, s.String(), true)

	if str := qs.FirstStringOrDefault(query.ParameterWhich, ""); len(str) > 0 {
		w, err := envelope.ParseWhich(str)
		if err != nil {
			return nil, err
		}
		state, _, err = envelope.Select(state, w, true)
		if err != nil {
			return nil, err
		}
	}

	obj := state.Map()
	obj["mode"] = s.String()
	obj["transit"] = s.IsTransit()
	return obj, nil
}

func (h *EnvelopeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	switch r.Method {
	case http.MethodGet:
		obj, err := h.Run(qs)
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
