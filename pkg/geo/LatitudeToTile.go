// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

// LatitudeToTile returns the y index of the tile at zoom level z that contains the latitude.
func LatitudeToTile(lat float64, z int) int {
	latRad := lat * math.Pi / 180.0
	return int((1.0 - math.Log(math.Tan(latRad)+(1/math.Cos(latRad)))/math.Pi) / 2.0 * math.Pow(float64(2), float64(z)))
}
