// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/analyst/pkg/cli/aws"
	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	"github.com/spatialcurrent/analyst/pkg/cli/runtime"
	"github.com/spatialcurrent/analyst/pkg/config"
)

// InitRootFlags initializes the root flags.
func InitRootFlags(flag *pflag.FlagSet) {
	aws.InitAwsFlags(flag)
	logging.InitLoggingFlags(flag)
	runtime.InitRuntimeFlags(flag)

	flag.StringSlice(config.FlagConfigUri, []string{}, "the uri(s) to the config file")
}
