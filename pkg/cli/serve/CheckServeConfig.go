// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/cors"
	"github.com/spatialcurrent/analyst/pkg/cli/http"
	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	"github.com/spatialcurrent/analyst/pkg/cli/runtime"
)

// CheckServeConfig checks the serve configuration.
func CheckServeConfig(v *viper.Viper, args []string) error {
	if len(args) > 0 {
		return errors.Errorf("serve takes no positional arguments, found %q", args)
	}
	if err := logging.CheckLoggingConfig(v); err != nil {
		return err
	}
	if err := runtime.CheckRuntimeConfig(v); err != nil {
		return err
	}
	if err := http.CheckHttpConfig(v); err != nil {
		return err
	}
	if v.GetBool(http.FlagHttpMiddlewareCors) {
		if err := cors.CheckCorsConfig(v); err != nil {
			return err
		}
	}
	if err := backend.CheckBackendConfig(v); err != nil {
		return err
	}
	return nil
}
