// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"fmt"
	"time"
)

// ErrInvalidDuration is returned when a configured duration is below its minimum.
type ErrInvalidDuration struct {
	Name  string
	Value time.Duration
	Min   time.Duration
}

func (e *ErrInvalidDuration) Error() string {
	return fmt.Sprintf("invalid %s %v, must be greater than or equal to %v", e.Name, e.Value, e.Min)
}

type ErrInvalidTimeoutIdle ErrInvalidDuration

func (e *ErrInvalidTimeoutIdle) Error() string {
	return (&ErrInvalidDuration{Name: "idle timeout", Value: e.Value, Min: e.Min}).Error()
}

type ErrInvalidTimeoutRead ErrInvalidDuration

func (e *ErrInvalidTimeoutRead) Error() string {
	return (&ErrInvalidDuration{Name: "read timeout", Value: e.Value, Min: e.Min}).Error()
}

type ErrInvalidTimeoutWrite ErrInvalidDuration

func (e *ErrInvalidTimeoutWrite) Error() string {
	return (&ErrInvalidDuration{Name: "write timeout", Value: e.Value, Min: e.Min}).Error()
}

type ErrInvalidGracefulShutdownWait ErrInvalidDuration

func (e *ErrInvalidGracefulShutdownWait) Error() string {
	return (&ErrInvalidDuration{Name: "graceful shutdown wait", Value: e.Value, Min: e.Min}).Error()
}
