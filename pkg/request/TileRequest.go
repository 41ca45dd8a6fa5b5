// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"github.com/spatialcurrent/analyst/pkg/core"
)

// TileRequest records a tile request redirected to the routing backend.
type TileRequest struct {
	Layer    string
	Tile     core.Tile
	Location string
}

func (tr TileRequest) String() string {
	return "redirected tile " + tr.Tile.String() + " for layer " + tr.Layer + " to " + tr.Location
}

func (tr TileRequest) Map() map[string]interface{} {
	return map[string]interface{}{
		"layer": map[string]interface{}{
			"name": tr.Layer,
		},
		"tile":     tr.Tile.Map(),
		"bbox":     tr.Tile.Bbox(),
		"location": tr.Location,
	}
}

func (tr TileRequest) Serialize(format string) ([]byte, error) {
	return serialize(tr.Map(), format)
}
