// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

// Select selects an envelope option.
// Returns ErrDisabledOption if the option is not enabled in the given state.
// Re-selecting the current option is a no-op and never requests a refresh.
func Select(state State, w Which, isProgrammatic bool) (State, bool, error) {
	if !state.IsEnabled(w) {
		return state, false, &ErrDisabledOption{Which: w}
	}
	if state.Selected == w {
		return state, false, nil
	}
	next := State{
		Enabled:       append(make([]Which, 0, len(state.Enabled)), state.Enabled...),
		Selected:      w,
		ToTimeVisible: state.ToTimeVisible,
	}
	return next, !isProgrammatic, nil
}
