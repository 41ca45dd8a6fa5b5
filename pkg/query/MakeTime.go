// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package query

import (
	"strconv"
	"strings"
	"time"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

// MakeTime returns the number of seconds since midnight of the clock time of t.
func MakeTime(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// ParseClock parses a time of day as either "HH:MM", "HH:MM:SS", or a number of seconds since midnight.
func ParseClock(name string, str string) (time.Duration, error) {
	str = strings.TrimSpace(str)
	if seconds, err := strconv.Atoi(str); err == nil {
		if seconds < 0 || seconds >= 48*3600 {
			return 0, &rerrors.ErrOutOfRange{Name: name, Value: seconds, Min: 0, Max: 48*3600 - 1}
		}
		return time.Duration(seconds) * time.Second, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, str); err == nil {
			return time.Duration(MakeTime(t)) * time.Second, nil
		}
	}
	return 0, &rerrors.ErrInvalidParameter{Name: name, Value: str}
}

// KilometersPerHourToMetersPerSecond converts a speed from km/h to m/s.
func KilometersPerHourToMetersPerSecond(kmh float64) float64 {
	return kmh * 1000 / 60 / 60
}
