// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/analyst/pkg/analysis"
	"github.com/spatialcurrent/analyst/pkg/mode"
)

// InitQueryFlags initializes the query flags.
// Values left empty fall back to the query defaults.
func InitQueryFlags(flag *pflag.FlagSet) {
	flag.String(FlagGraphId, "", "the id of the graph (scenario 1)")
	flag.String(FlagGraphId2, "", "the id of the graph to compare against (scenario 2)")
	flag.String(FlagLat, "", "latitude of the origin")
	flag.String(FlagLon, "", "longitude of the origin")
	flag.String(FlagMode, mode.Default, "the travel mode, e.g., TRANSIT,WALK, WALK, BICYCLE, or CAR")
	flag.String(FlagWhich, "", "the envelope option: POINT_ESTIMATE, BEST_CASE, WORST_CASE, or SPREAD")
	flag.String(FlagDate, "", "the departure date as YYYY-MM-DD")
	flag.String(FlagFromTime, "", "the earliest departure time as HH:MM")
	flag.String(FlagToTime, "", "the latest departure time as HH:MM")
	flag.String(FlagWalkSpeed, "", "the walk speed in km/h")
	flag.String(FlagBikeSpeed, "", "the bike speed in km/h")
	flag.String(FlagShapefile, "", "the id of the shapefile with the destinations")
	flag.String(FlagCategory, "", "the category of the attribute")
	flag.String(FlagAttribute, "", "the attribute to plot")
	flag.String(FlagComparison, "", "the comparison: "+analysis.NoComparison+" or "+analysis.Compare)
	flag.String(FlagMinTime, "", "the lower bound of the travel time window in minutes")
	flag.String(FlagTimeLimit, "", "the upper bound of the travel time window in minutes")
	flag.Bool(FlagShowTransit, false, "show the transit network layer")
	flag.Bool(FlagShowIso, false, "show isochrones on the surface layer")
	flag.Bool(FlagShowPoints, false, "show the destination points on the surface layer")
}
