// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/client"
)

// NewCommand returns a new client command.
func NewCommand() *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		Long:  CliLong,
	}
	backend.InitBackendFlags(clientCmd.PersistentFlags())
	output.InitOutputFlags(clientCmd.PersistentFlags(), output.DefaultOutputFormat)

	clientCmd.AddCommand(
		NewClientCommand(&NewClientCommandInput{
			Use:   "projects",
			Short: "list the projects on the backend",
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				projects, err := c.Projects(ctx)
				if err != nil {
					return nil, err
				}
				return projects.Maps(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "project",
			Short:   "print a project on the backend",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				project, err := c.Project(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return project.Map(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "exemplar-day",
			Short:   "print the exemplar day of a project",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				d, err := c.ExemplarDay(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return map[string]interface{}{
					"projectId":   v.GetString(FlagProjectId),
					"exemplarDay": d.Format("2006-01-02"),
				}, nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "boundary",
			Short:   "print the boundary of a project as a GeoJSON feature",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				project, err := c.Project(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				f, err := project.BoundaryFeature()
				if err != nil {
					return nil, err
				}
				b, err := f.MarshalJSON()
				if err != nil {
					return nil, err
				}
				return append(b, '\n'), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "shapefiles",
			Short:   "list the shapefiles of a project",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				shapefiles, err := c.Shapefiles(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return shapefiles.Maps(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "scenarios",
			Short:   "list the scenarios of a project",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				scenarios, err := c.Scenarios(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return scenarios.Maps(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "bundles",
			Short:   "list the GTFS bundles of a project",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				bundles, err := c.Bundles(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return bundles.Maps(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:     "queries",
			Short:   "list the regional queries of a project",
			Project: true,
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				queries, err := c.Queries(ctx, v.GetString(FlagProjectId))
				if err != nil {
					return nil, err
				}
				return queries.Maps(), nil
			},
		}),
		NewClientCommand(&NewClientCommandInput{
			Use:   "user",
			Short: "print the current user",
			Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
				user, err := c.CurrentUser(ctx)
				if err != nil {
					return nil, err
				}
				return user.Map(), nil
			},
		}),
		newLedgerCommand(),
		newResultCommand(),
	)

	return clientCmd
}

func newLedgerCommand() *cobra.Command {
	cmd := NewClientCommand(&NewClientCommandInput{
		Use:   "ledger",
		Short: "list the quota ledger of a user, by default the current user",
		Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
			userId := v.GetString(FlagUserId)
			if len(userId) == 0 {
				user, err := c.CurrentUser(ctx)
				if err != nil {
					return nil, err
				}
				userId = user.Id
			}
			ledger, err := c.Ledger(ctx, userId)
			if err != nil {
				return nil, err
			}
			return ledger.Maps(), nil
		},
	})
	cmd.Flags().String(FlagUserId, "", "the id of the user")
	return cmd
}

func newResultCommand() *cobra.Command {
	cmd := NewClientCommand(&NewClientCommandInput{
		Use:   "result",
		Short: "fetch the single-point results of a query as cumulative series",
		Run: func(ctx context.Context, v *viper.Viper, c *client.Client) (interface{}, error) {
			return Result(ctx, v, c)
		},
	})
	cliquery.InitQueryFlags(cmd.Flags())
	return cmd
}
