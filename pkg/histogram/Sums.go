// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package histogram

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

var (
	null = []byte("null")
)

// Sums is a sparse mapping from minute to count.
// On the wire it is either an array indexed by minute or an object keyed by minute.
// Null entries are treated as missing.
type Sums map[int]float64

func (s *Sums) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	out := Sums{}
	if len(b) == 0 || bytes.Equal(b, null) {
		*s = out
		return nil
	}
	switch b[0] {
	case '[':
		values := make([]json.RawMessage, 0)
		err := json.Unmarshal(b, &values)
		if err != nil {
			return errors.Wrap(err, "error unmarshaling sums array")
		}
		for minute, raw := range values {
			if err := out.set(minute, raw); err != nil {
				return err
			}
		}
	case '{':
		values := map[string]json.RawMessage{}
		err := json.Unmarshal(b, &values)
		if err != nil {
			return errors.Wrap(err, "error unmarshaling sums object")
		}
		for key, raw := range values {
			minute, err := strconv.Atoi(key)
			if e, ok := err.(*strconv.NumError); ok && e.Err == strconv.ErrRange && isDigits(key) {
				// beyond any horizon
				continue
			}
			if err != nil || minute < 0 {
				return &ErrInvalidMinute{Value: key}
			}
			if err := out.set(minute, raw); err != nil {
				return err
			}
		}
	default:
		return &ErrInvalidSums{Value: string(b)}
	}
	*s = out
	return nil
}

func isDigits(str string) bool {
	if len(str) == 0 {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s Sums) set(minute int, raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, null) {
		return nil
	}
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return &ErrInvalidCount{Minute: minute, Value: string(raw)}
	}
	count := 0.0
	err := json.Unmarshal(raw, &count)
	if err != nil {
		return &ErrInvalidCount{Minute: minute, Value: string(raw)}
	}
	s[minute] = count
	return nil
}
