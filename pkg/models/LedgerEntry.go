// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

// LedgerEntry is a change to a user's or group's quota.
type LedgerEntry struct {
	Id       string `json:"id"`
	UserId   string `json:"userId"`
	GroupId  string `json:"groupId,omitempty"`
	Delta    int64  `json:"delta"`
	Query    string `json:"query,omitempty"`
	Time     int64  `json:"time"`
	ParentId string `json:"parentId,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Note     string `json:"note,omitempty"`
}

type Ledger []LedgerEntry

// Balance returns the sum of the deltas of the ledger.
func (l Ledger) Balance() int64 {
	total := int64(0)
	for _, e := range l {
		total += e.Delta
	}
	return total
}

func (e LedgerEntry) Map() map[string]interface{} {
	m := map[string]interface{}{
		"id":     e.Id,
		"userId": e.UserId,
		"delta":  e.Delta,
		"time":   e.Time,
	}
	for k, v := range map[string]string{"groupId": e.GroupId, "query": e.Query, "parentId": e.ParentId, "reason": e.Reason, "note": e.Note} {
		if len(v) > 0 {
			m[k] = v
		}
	}
	return m
}

func (l Ledger) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(l))
	for _, e := range l {
		maps = append(maps, e.Map())
	}
	return maps
}
