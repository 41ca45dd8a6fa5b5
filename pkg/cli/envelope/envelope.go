// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package envelope contains the command for printing the envelope options of a travel mode.
package envelope

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/output"
	cliquery "github.com/spatialcurrent/analyst/pkg/cli/query"
	"github.com/spatialcurrent/analyst/pkg/config"
	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/mode"
)

const (
	CliUse   = "envelope"
	CliShort = "print the envelope options of a travel mode"
	CliLong  = "print the enabled and selected envelope options (POINT_ESTIMATE, BEST_CASE, WORST_CASE, SPREAD) of a travel mode"
)

// NewCommand returns a new envelope command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   CliUse,
		DisableFlagsInUseLine: true,
		Short:                 CliShort,
		Long:                  CliLong,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd)
			if err != nil {
				return errors.Wrap(err, "error initializing viper")
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return err
			}
			obj, err := State(v)
			if err != nil {
				return err
			}
			s3Client, err := aws.NewS3ClientFromViper(v, v.GetString(output.FlagOutputUri))
			if err != nil {
				return err
			}
			return output.WriteObject(v, s3Client, obj)
		},
	}
	flag := cmd.Flags()
	flag.String(cliquery.FlagMode, mode.Default, "the travel mode, e.g., TRANSIT,WALK, WALK, BICYCLE, or CAR")
	flag.String(cliquery.FlagWhich, "", "select an envelope option after the mode transition")
	output.InitOutputFlags(flag, output.DefaultOutputFormat)
	return cmd
}

// State returns the envelope state of the configured mode, with the mode and whether it is a transit mode.
func State(v *viper.Viper) (map[string]interface{}, error) {
	m, err := mode.Parse(v.GetString(cliquery.FlagMode))
	if err != nil {
		return nil, err
	}

	state, _ := envelope.Transition(envelope.State{}, m.String(), true)

	if str := v.GetString(cliquery.FlagWhich); len(str) > 0 {
		w, err := envelope.ParseWhich(str)
		if err != nil {
			return nil, err
		}
		state, _, err = envelope.Select(state, w, true)
		if err != nil {
			return nil, err
		}
	}

	obj := state.Map()
	obj["mode"] = m.String()
	obj["transit"] = m.IsTransit()
	return obj, nil
}
