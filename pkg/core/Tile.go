// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

import (
	"fmt"
	"strconv"
	"strings"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
	"github.com/spatialcurrent/analyst/pkg/geo"
)

const (
	MinZoom = 0
	MaxZoom = 22
)

// Tile is a slippy map tile.
type Tile struct {
	Z int
	X int
	Y int
}

func (t Tile) String() string {
	return fmt.Sprint(t.Z) + "/" + fmt.Sprint(t.X) + "/" + fmt.Sprint(t.Y)
}

func (t Tile) Map() map[string]interface{} {
	return map[string]interface{}{
		"z": t.Z,
		"x": t.X,
		"y": t.Y,
	}
}

func (t Tile) Bbox() []float64 {
	return geo.TileToBoundingBox(t.Z, t.X, t.Y)
}

// Expand replaces the {z}, {x}, and {y} placeholders of a tile url template.
func (t Tile) Expand(template string) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	).Replace(template)
}

// Validate returns an error if the zoom level or tile indices are out of range.
func (t Tile) Validate() error {
	if t.Z < MinZoom || t.Z > MaxZoom {
		return &rerrors.ErrOutOfRange{Name: "z", Value: t.Z, Min: MinZoom, Max: MaxZoom}
	}
	max := (1 << uint(t.Z)) - 1
	if t.X < 0 || t.X > max {
		return &rerrors.ErrOutOfRange{Name: "x", Value: t.X, Min: 0, Max: max}
	}
	if t.Y < 0 || t.Y > max {
		return &rerrors.ErrOutOfRange{Name: "y", Value: t.Y, Min: 0, Max: max}
	}
	return nil
}

// NewTileFromLocation returns the tile at zoom level z that contains the location.
func NewTileFromLocation(lat float64, lon float64, z int) Tile {
	return Tile{Z: z, X: geo.LongitudeToTile(lon, z), Y: geo.LatitudeToTile(lat, z)}
}

// NewTileFromRequestVars parses a tile from the z, x, and y route variables.
func NewTileFromRequestVars(vars map[string]string) (Tile, error) {
	t := Tile{}

	z, err := strconv.Atoi(vars["z"])
	if err != nil {
		return t, &rerrors.ErrInvalidParameter{Name: "z", Value: vars["z"]}
	}
	t.Z = z

	x, err := strconv.Atoi(vars["x"])
	if err != nil {
		return t, &rerrors.ErrInvalidParameter{Name: "x", Value: vars["x"]}
	}
	t.X = x

	y, err := strconv.Atoi(vars["y"])
	if err != nil {
		return t, &rerrors.ErrInvalidParameter{Name: "y", Value: vars["y"]}
	}
	t.Y = y

	return t, t.Validate()
}
