// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

// TileToBoundingBox returns the bounding box of a tile as [west, south, east, north].
func TileToBoundingBox(z int, x int, y int) []float64 {
	w := TileToLongitude(x, z)
	e := TileToLongitude(x+1, z)
	n := TileToLatitude(y, z)
	s := TileToLatitude(y+1, z)
	return []float64{w, s, e, n}
}
