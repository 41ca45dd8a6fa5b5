// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

// Comparison is whether the panel compares two scenarios.
type Comparison string

const (
	NoComparison Comparison = "no-comparison"
	Compare      Comparison = "compare"
)

// ParseComparison parses a comparison type.  An empty string is no comparison.
func ParseComparison(str string) (Comparison, error) {
	switch Comparison(str) {
	case "", NoComparison:
		return NoComparison, nil
	case Compare:
		return Compare, nil
	}
	return NoComparison, &rerrors.ErrInvalidParameter{Name: "comparison", Value: str}
}
