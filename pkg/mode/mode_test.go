// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransit(t *testing.T) {
	assert.True(t, IsTransit("TRANSIT,WALK"))
	assert.True(t, IsTransit("BUS,WALK"))
	assert.True(t, IsTransit("WALK, tram"))
	assert.True(t, IsTransit("TRANSIT,BICYCLE"))
	assert.False(t, IsTransit("WALK"))
	assert.False(t, IsTransit("BICYCLE"))
	assert.False(t, IsTransit("CAR"))
	assert.False(t, IsTransit(""))
	assert.False(t, IsTransit("HOVERCRAFT"))
}

func TestParse(t *testing.T) {
	s, err := Parse("transit, WALK,TRANSIT")
	assert.NoError(t, err)
	assert.Equal(t, Set([]string{Transit, Walk}), s)
	assert.True(t, s.IsTransit())
	assert.Equal(t, "TRANSIT,WALK", s.String())
}

func TestParseNonTransit(t *testing.T) {
	s, err := Parse("BICYCLE")
	assert.NoError(t, err)
	assert.False(t, s.IsTransit())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.Equal(t, ErrEmptyMode, err)

	_, err = Parse(" , ")
	assert.Equal(t, ErrEmptyMode, err)

	_, err = Parse("WALK,HOVERCRAFT")
	assert.IsType(t, &ErrUnknownMode{}, err)
	assert.Equal(t, "unknown traverse mode HOVERCRAFT", err.Error())
}
