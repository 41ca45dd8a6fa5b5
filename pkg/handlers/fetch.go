// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"context"

	"github.com/spatialcurrent/analyst/pkg/client"
	"github.com/spatialcurrent/analyst/pkg/query"
)

func FetchProjects(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return projects.Maps(), nil
}

func FetchExemplarDay(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error) {
	d, err := c.ExemplarDay(ctx, vars["id"])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"projectId":   vars["id"],
		"exemplarDay": d.Format(query.DateFormat),
	}, nil
}

func FetchShapefiles(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error) {
	shapefiles, err := c.Shapefiles(ctx, vars["id"])
	if err != nil {
		return nil, err
	}
	return shapefiles.Maps(), nil
}

func FetchScenarios(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error) {
	scenarios, err := c.Scenarios(ctx, vars["id"])
	if err != nil {
		return nil, err
	}
	return scenarios.Maps(), nil
}

func FetchCurrentUser(ctx context.Context, c *client.Client, vars map[string]string) (interface{}, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return user.Map(), nil
}
