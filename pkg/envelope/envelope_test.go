// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	transitModes    = []string{"TRANSIT,WALK", "BUS,WALK", "TRANSIT,BICYCLE", "RAIL", "FERRY,WALK"}
	nonTransitModes = []string{"WALK", "BICYCLE", "CAR", "", "UNKNOWN"}
	startingStates  = []State{
		State{},
		State{Enabled: []Which{PointEstimate}, Selected: PointEstimate},
		State{Enabled: []Which{BestCase, WorstCase}, Selected: BestCase, ToTimeVisible: true},
		State{Enabled: []Which{BestCase, WorstCase}, Selected: WorstCase, ToTimeVisible: true},
		State{Selected: Spread},
	}
)

func TestTransitionTransit(t *testing.T) {
	for _, m := range transitModes {
		for _, s := range startingStates {
			next, _ := Transition(s, m, false)
			assert.False(t, next.IsEnabled(PointEstimate), m)
			assert.False(t, next.IsEnabled(Spread), m)
			assert.True(t, next.IsEnabled(BestCase), m)
			assert.True(t, next.IsEnabled(WorstCase), m)
			assert.NotEqual(t, PointEstimate, next.Selected, m)
			assert.True(t, next.ToTimeVisible, m)
		}
	}
}

func TestTransitionTransitKeepsBestCase(t *testing.T) {
	s := State{Enabled: []Which{BestCase, WorstCase}, Selected: BestCase}
	next, _ := Transition(s, "TRANSIT,WALK", false)
	assert.Equal(t, BestCase, next.Selected)
}

func TestTransitionTransitDefault(t *testing.T) {
	next, _ := Transition(State{}, "TRANSIT,WALK", true)
	assert.Equal(t, WorstCase, next.Selected)

	next, _ = Transition(State{Enabled: []Which{PointEstimate}, Selected: PointEstimate}, "TRANSIT,WALK", true)
	assert.Equal(t, WorstCase, next.Selected)
}

func TestTransitionNonTransit(t *testing.T) {
	for _, m := range nonTransitModes {
		for _, s := range startingStates {
			next, _ := Transition(s, m, false)
			assert.Equal(t, []Which{PointEstimate}, next.Enabled, m)
			assert.Equal(t, PointEstimate, next.Selected, m)
			assert.False(t, next.ToTimeVisible, m)
		}
	}
}

func TestTransitionIdempotent(t *testing.T) {
	for _, m := range append(transitModes, nonTransitModes...) {
		for _, s := range startingStates {
			once, _ := Transition(s, m, true)
			twice, _ := Transition(once, m, true)
			assert.True(t, once.Equal(twice), m)
		}
	}
}

func TestTransitionRefresh(t *testing.T) {
	_, refresh := Transition(State{}, "WALK", false)
	assert.True(t, refresh)
	_, refresh = Transition(State{}, "WALK", true)
	assert.False(t, refresh)
}

func TestSelect(t *testing.T) {
	s, _ := Transition(State{}, "TRANSIT,WALK", true)

	next, refresh, err := Select(s, BestCase, false)
	require.NoError(t, err)
	assert.True(t, refresh)
	assert.Equal(t, BestCase, next.Selected)
	assert.Equal(t, WorstCase, s.Selected)

	again, refresh, err := Select(next, BestCase, false)
	require.NoError(t, err)
	assert.False(t, refresh)
	assert.True(t, again.Equal(next))

	_, refresh, err = Select(next, WorstCase, true)
	require.NoError(t, err)
	assert.False(t, refresh)

	_, _, err = Select(next, PointEstimate, false)
	assert.IsType(t, &ErrDisabledOption{}, err)
}

func TestParseWhich(t *testing.T) {
	w, err := ParseWhich(" worst_case ")
	assert.NoError(t, err)
	assert.Equal(t, WorstCase, w)

	_, err = ParseWhich("AVERAGE")
	assert.IsType(t, &ErrUnknownOption{}, err)
}

func TestStateMap(t *testing.T) {
	s, _ := Transition(State{}, "WALK", true)
	m := s.Map()
	assert.Equal(t, "POINT_ESTIMATE", m["selected"])
	assert.Equal(t, false, m["toTimeVisible"])
	options := m["options"].([]map[string]interface{})
	assert.Len(t, options, 4)
	assert.Equal(t, map[string]interface{}{"value": "POINT_ESTIMATE", "enabled": true, "selected": true}, options[0])
	assert.Equal(t, map[string]interface{}{"value": "SPREAD", "enabled": false, "selected": false}, options[3])
}
