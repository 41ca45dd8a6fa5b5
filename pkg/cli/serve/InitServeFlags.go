// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/cors"
	"github.com/spatialcurrent/analyst/pkg/cli/http"
)

// InitServeFlags initializes the serve flags.
func InitServeFlags(flag *pflag.FlagSet) {
	http.InitHttpFlags(flag)
	cors.InitCorsFlags(flag)
	backend.InitBackendFlags(flag)
	backend.InitLoginFlags(flag)
}
