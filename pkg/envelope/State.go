// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package envelope

// State is the enabled set and current selection of the envelope options.
// The zero value has nothing enabled and nothing selected.
type State struct {
	Enabled  []Which // in the order of Options
	Selected Which
	// ToTimeVisible is true when the latest departure time can be chosen.
	ToTimeVisible bool
}

func (s State) IsEnabled(w Which) bool {
	for _, x := range s.Enabled {
		if x == w {
			return true
		}
	}
	return false
}

func (s State) Equal(o State) bool {
	if s.Selected != o.Selected || s.ToTimeVisible != o.ToTimeVisible || len(s.Enabled) != len(o.Enabled) {
		return false
	}
	for i := range s.Enabled {
		if s.Enabled[i] != o.Enabled[i] {
			return false
		}
	}
	return true
}

func (s State) Map() map[string]interface{} {
	options := make([]map[string]interface{}, 0, len(Options))
	for _, w := range Options {
		options = append(options, map[string]interface{}{
			"value":    string(w),
			"enabled":  s.IsEnabled(w),
			"selected": s.Selected == w,
		})
	}
	return map[string]interface{}{
		"options":       options,
		"selected":      string(s.Selected),
		"toTimeVisible": s.ToTimeVisible,
	}
}
