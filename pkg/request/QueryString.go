// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

type QueryString struct {
	Params url.Values
}

func (qs QueryString) Has(name string) bool {
	v, ok := qs.Params[name]
	return ok && len(v) > 0
}

func (qs QueryString) FirstString(name string) (string, error) {
	v, ok := qs.Params[name]
	if !ok || len(v) == 0 {
		return "", &ErrQueryStringParameterMissing{Name: name}
	}
	return v[0], nil
}

// FirstStringOrDefault returns the first value of the parameter or the fallback if missing.
func (qs QueryString) FirstStringOrDefault(name string, fallback string) string {
	s, err := qs.FirstString(name)
	if err != nil || len(s) == 0 {
		return fallback
	}
	return s
}

func (qs QueryString) FirstInt(name string) (int, error) {
	s, err := qs.FirstString(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(&rerrors.ErrInvalidParameter{Name: name, Value: s}, "query string parameter is not an int")
	}
	return i, nil
}

func (qs QueryString) FirstFloat(name string) (float64, error) {
	s, err := qs.FirstString(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(&rerrors.ErrInvalidParameter{Name: name, Value: s}, "query string parameter is not a float")
	}
	return f, nil
}

// FirstBool returns the first value of the parameter as a bool.
// A parameter present without a value, e.g., "?pretty", is true.
func (qs QueryString) FirstBool(name string) (bool, error) {
	v, ok := qs.Params[name]
	if !ok {
		return false, &ErrQueryStringParameterMissing{Name: name}
	}
	if len(v) == 0 || len(v[0]) == 0 {
		return true, nil
	}
	b, err := strconv.ParseBool(v[0])
	if err != nil {
		return false, errors.Wrap(&rerrors.ErrInvalidParameter{Name: name, Value: v[0]}, "query string parameter is not a bool")
	}
	return b, nil
}

// IsMissing returns true if the error is caused by a missing query string parameter.
func IsMissing(err error) bool {
	_, ok := errors.Cause(err).(*ErrQueryStringParameterMissing)
	return ok
}

func NewQueryString(r *http.Request) QueryString {
	return QueryString{Params: r.URL.Query()}
}
