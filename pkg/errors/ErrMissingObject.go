// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

// ErrMissingObject is returned when the backend has no object of the given type with the given id.
type ErrMissingObject struct {
	Type string
	Id   string
}

func (e *ErrMissingObject) Error() string {
	return e.Type + " with id " + e.Id + " does not exist or otherwise missing"
}
