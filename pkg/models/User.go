// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package models

type ProjectPermission struct {
	ProjectId string `json:"projectId"`
	Read      bool   `json:"read"`
	Write     bool   `json:"write"`
	Admin     bool   `json:"admin"`
}

type User struct {
	Id                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email,omitempty"`
	Lang               string              `json:"lang,omitempty"`
	Quota              int64               `json:"quota"`
	AnalystVersion     string              `json:"analystVersion,omitempty"`
	ProjectPermissions []ProjectPermission `json:"projectPermissions,omitempty"`
}

// NearingQuota returns true if the remaining quota is below the warning threshold.
func (u User) NearingQuota() bool {
	return u.Quota < QuotaWarning
}

// CanRead returns true if the user has read permission on the project.
func (u User) CanRead(projectId string) bool {
	for _, p := range u.ProjectPermissions {
		if p.ProjectId == projectId && (p.Read || p.Write || p.Admin) {
			return true
		}
	}
	return false
}

func (u User) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":           u.Id,
		"name":         u.Name,
		"email":        u.Email,
		"lang":         u.Lang,
		"quota":        u.Quota,
		"nearingQuota": u.NearingQuota(),
	}
}
