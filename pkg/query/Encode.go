// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"net/url"
	"sort"
	"strings"
)

// ParameterOrder is the order parameters appear in encoded query strings.
var ParameterOrder = []string{
	ParameterShowIso,
	ParameterShowPoints,
	ParameterMinTime,
	ParameterTimeLimit,
	ParameterGraphId,
	ParameterLat,
	ParameterLon,
	ParameterMode,
	ParameterBikeSpeed,
	ParameterWalkSpeed,
	ParameterWhich,
	ParameterDate,
	ParameterFromTime,
	ParameterToTime,
	ParameterShapefile,
	ParameterGraphId2,
	ParameterScenarioId,
	ParameterScenarioId1,
	ParameterScenarioId2,
}

// Encode encodes the values like url.Values.Encode, but keys in ParameterOrder come first and in that order.
// Other keys follow sorted by key.
func Encode(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	known := map[string]struct{}{}
	for _, k := range ParameterOrder {
		known[k] = struct{}{}
		if _, ok := v[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0)
	for k := range v {
		if _, ok := known[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	var b strings.Builder
	for _, k := range keys {
		for _, value := range v[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}
