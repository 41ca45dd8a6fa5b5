// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"fmt"
)

// ErrUnauthorized is returned when the server responds with 401.
// Interactive callers should redirect to the login page.
type ErrUnauthorized struct {
	Url string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized request to %q", e.Url)
}

type ErrUnexpectedStatus struct {
	Url        string
	StatusCode int
	Body       string
}

func (e *ErrUnexpectedStatus) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("unexpected status code %d from %q: %s", e.StatusCode, e.Url, e.Body)
	}
	return fmt.Sprintf("unexpected status code %d from %q", e.StatusCode, e.Url)
}
