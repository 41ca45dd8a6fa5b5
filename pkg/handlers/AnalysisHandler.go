// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/request"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

// AnalysisHandler runs a single-point analysis for the query parameters.
// Depending on the output, it responds with the cumulative series, the chart as a png, or the overlay urls.
type AnalysisHandler struct {
	*BaseHandler
	Output string
}

const (
	OutputPlot  = "plot"
	OutputChart = "chart"
	OutputUrls  = "urls"
)

// View refreshes the panel described by the request and renders it.
func (h *AnalysisHandler) View(r *http.Request) (analysis.View, error) {
	c := h.ClientForRequest(r)

	p, err := analysis.ParsePanel(c, h.BackendUrl, r.URL.Query())
	if err != nil {
		return analysis.View{}, err
	}

	if len(p.Attribute) == 0 {
		return analysis.View{}, &rerrors.ErrMissingRequiredParameter{Name: analysis.ParameterAttribute}
	}

	start := time.Now()
	err = p.Refresh(r.Context())
	if err != nil {
		return analysis.View{}, err
	}

	queries := []query.SinglePointQuery{p.Query(p.Scenario1)}
	if p.IsComparing() {
		queries = append(queries, p.Query(p.Scenario2))
	}
	h.LogInfo(request.ResultRequest{Queries: queries, Attribute: p.Attribute, Duration: time.Since(start)})

	return p.Render()
}

func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request, format string, pretty bool) error {
	switch h.Output {
	case OutputUrls:
		p, err := analysis.ParsePanel(nil, h.BackendUrl, r.URL.Query())
		if err != nil {
			return err
		}
		return h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     p.Overlays().Map(),
			Pretty:     pretty,
		})
	case OutputChart:
		qs := request.NewQueryString(r)
		width, err := qs.FirstInt("width")
		if err != nil && !request.IsMissing(err) {
			return err
		}
		height, err := qs.FirstInt("height")
		if err != nil && !request.IsMissing(err) {
			return err
		}
		err = chart.CheckSize(width, height)
		if err != nil {
			return err
		}
		v, err := h.View(r)
		if err != nil {
			return err
		}
		buf := new(bytes.Buffer)
		err = chart.Render(buf, v.ChartInput(width, height))
		if err != nil {
			return err
		}
		return h.RespondWithImage(w, buf.Bytes())
	}

	v, err := h.View(r)
	if err != nil {
		return err
	}
	return h.RespondWithObject(&Response{
		Writer:     w,
		StatusCode: http.StatusOK,
		Format:     format,
		Object:     v.Rows(),
		Pretty:     pretty,
	})
}

func (h *AnalysisHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	format := h.Start(r, h)

	pretty, _ := request.NewQueryString(r).FirstBool("pretty")

	switch r.Method {
	case http.MethodGet:
		err := h.Run(w, r, format, pretty)
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
