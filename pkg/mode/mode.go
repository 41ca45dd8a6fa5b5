// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package mode parses travel modes such as "TRANSIT,WALK" and classifies them as transit or non-transit.
package mode

const (
	Walk      = "WALK"
	Bicycle   = "BICYCLE"
	Car       = "CAR"
	Transit   = "TRANSIT"
	Bus       = "BUS"
	Tram      = "TRAM"
	Subway    = "SUBWAY"
	Rail      = "RAIL"
	Ferry     = "FERRY"
	CableCar  = "CABLE_CAR"
	Gondola   = "GONDOLA"
	Funicular = "FUNICULAR"
	Airplane  = "AIRPLANE"

	Separator = ","

	// Default is the mode selected when the analysis panel is first shown.
	Default = Transit + Separator + Walk
)

var (
	// Modes is the list of all known traverse modes.
	Modes = []string{
		Walk,
		Bicycle,
		Car,
		Transit,
		Bus,
		Tram,
		Subway,
		Rail,
		Ferry,
		CableCar,
		Gondola,
		Funicular,
		Airplane,
	}

	transitModes = map[string]struct{}{
		Transit:   struct{}{},
		Bus:       struct{}{},
		Tram:      struct{}{},
		Subway:    struct{}{},
		Rail:      struct{}{},
		Ferry:     struct{}{},
		CableCar:  struct{}{},
		Gondola:   struct{}{},
		Funicular: struct{}{},
		Airplane:  struct{}{},
	}

	knownModes = func() map[string]struct{} {
		m := map[string]struct{}{}
		for _, x := range Modes {
			m[x] = struct{}{}
		}
		return m
	}()
)
