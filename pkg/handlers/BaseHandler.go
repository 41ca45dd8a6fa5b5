// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"

	"github.com/spatialcurrent/analyst/pkg/chart"
	"github.com/spatialcurrent/analyst/pkg/client"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/histogram"
	"github.com/spatialcurrent/analyst/pkg/middleware"
	"github.com/spatialcurrent/analyst/pkg/mode"
	"github.com/spatialcurrent/analyst/pkg/models"
	"github.com/spatialcurrent/analyst/pkg/request"
	"github.com/spatialcurrent/analyst/pkg/result"
	"github.com/spatialcurrent/analyst/pkg/util"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

type BaseHandler struct {
	Logger     *gsl.Logger
	Client     *client.Client
	BackendUrl string
	Debug      bool
	GitBranch  string
	GitCommit  string
}

// Start records the handler name and route variables in the request record, and returns the requested format.
func (h *BaseHandler) Start(r *http.Request, handler interface{}) string {
	if req := middleware.GetRequest(r.Context()); req != nil {
		req.Handler = reflect.TypeOf(handler).Elem().Name()
		for k, v := range mux.Vars(r) {
			req.Vars[k] = v
		}
	}
	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)
	return format
}

// ClientForRequest returns the backend client with the credentials of the request.
// Requests without a bearer token use the token of the configured client.
func (h *BaseHandler) ClientForRequest(r *http.Request) *client.Client {
	authorization := h.Client.Authorization
	if str := r.Header.Get("Authorization"); len(str) > 0 {
		parts := strings.SplitN(str, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			authorization = parts[1]
		}
	}
	return h.Client.WithCredentials(authorization, r.Header.Get("Cookie"))
}

func (h *BaseHandler) LogInfo(r request.Request) {
	if h.Debug {
		h.Logger.Info(r.Map())
	}
}

func (h *BaseHandler) RespondWithObject(resp *Response) error {

	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            resp.Object,
		Format:            resp.Format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            resp.Pretty,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return errors.Wrap(err, "error serializing response body")
	}

	contentType := ""
	switch resp.Format {
	case "bson":
		contentType = "application/ubjson"
	case "json":
		contentType = "application/json"
	case "toml":
		contentType = "application/toml"
	case "yaml", "yml":
		contentType = "text/yaml"
	case "csv":
		contentType = "text/csv"
	default:
		contentType = "text/plain; charset=utf-8"
	}

	if len(resp.Filename) > 0 {
		resp.Writer.Header().Set("Content-Disposition", "attachment; filename="+resp.Filename)
	}

	resp.Writer.Header().Set("Content-Type", contentType)
	if resp.StatusCode != http.StatusOK {
		resp.Writer.WriteHeader(resp.StatusCode)
	}
	_, err = resp.Writer.Write(b)
	return err
}

// StatusCode returns the http status code for the error.
func StatusCode(err error) int {
	switch e := errors.Cause(err).(type) {
	case *rerrors.ErrMissingRequiredParameter,
		*rerrors.ErrInvalidParameter,
		*rerrors.ErrOutOfRange,
		*request.ErrQueryStringParameterMissing,
		*mode.ErrUnknownMode,
		*envelope.ErrUnknownOption,
		*envelope.ErrDisabledOption,
		*histogram.ErrInvalidCount,
		*histogram.ErrInvalidMinute,
		*histogram.ErrInvalidSums:
		return http.StatusBadRequest
	case *rerrors.ErrMissingObject, *result.ErrMissingAttribute:
		return http.StatusNotFound
	case *client.ErrUnauthorized:
		return http.StatusUnauthorized
	case *client.ErrUnexpectedStatus:
		if e.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	switch errors.Cause(err) {
	case mode.ErrEmptyMode, result.ErrMissingData:
		return http.StatusBadRequest
	case chart.ErrNoSeries:
		return http.StatusUnprocessableEntity
	case models.ErrMissingBoundary:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *BaseHandler) RespondWithError(w http.ResponseWriter, r *http.Request, err error, format string) error {

	if req := middleware.GetRequest(r.Context()); req != nil {
		req.Error = err
	}

	statusCode := StatusCode(err)
	if statusCode == http.StatusInternalServerError {
		h.Logger.Error(err)
	}

	if len(format) == 0 || format == FormatPng {
		format = "json"
	}

	b, serr := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            map[string]interface{}{"success": false, "error": err.Error()},
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            false,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if serr != nil {
		w.WriteHeader(statusCode)
		return serr
	}

	w.WriteHeader(statusCode)
	w.Write(b) // #nosec
	return nil
}

func (h *BaseHandler) RespondWithNotImplemented(w http.ResponseWriter, format string) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            map[string]interface{}{"success": false, "error": "not implemented"},
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            false,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusNotImplemented)
	w.Write(b) // #nosec
	return nil
}

// RespondWithImage writes the bytes of a png image.
func (h *BaseHandler) RespondWithImage(w http.ResponseWriter, b []byte) error {
	w.Header().Set("Content-Type", ContentTypePng)
	_, err := w.Write(b)
	return err
}
