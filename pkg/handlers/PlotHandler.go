// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/request"
	"github.com/spatialcurrent/analyst/pkg/result"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

const (
	MaxBodySize = 32 << 20
)

// PlotHandler pivots a posted results object into the cumulative series of an attribute.
type PlotHandler struct {
	*BaseHandler
}

func (h *PlotHandler) Run(body io.Reader, qs request.QueryString) ([]map[string]interface{}, error) {
	attribute, err := qs.FirstString(analysis.ParameterAttribute)
	if err != nil {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: analysis.ParameterAttribute}
	}

	b, err := ioutil.ReadAll(io.LimitReader(body, MaxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "error reading body")
	}

	res, err := result.Parse(b)
	if err != nil {
		return nil, err
	}

	series, err := result.GetPlotData(res, attribute)
	if err != nil {
		return nil, err
	}

	return series.Maps(), nil
}

func (h *PlotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	switch r.Method {
	case http.MethodPost:
		obj, err := h.Run(r.Body, qs)
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
