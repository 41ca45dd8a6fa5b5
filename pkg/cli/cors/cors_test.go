// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cors

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestCheckCorsConfig(t *testing.T) {
	v := viper.New()
	v.Set(FlagCorsOrigin, CorsOriginWildcard)
	v.Set(FlagCorsCredentials, "false")
	assert.NoError(t, CheckCorsConfig(v))

	v.Set(FlagCorsCredentials, "true")
	assert.Equal(t, &ErrWildcardCredentials{}, CheckCorsConfig(v))

	v.Set(FlagCorsOrigin, "https://analyst.example.com")
	assert.NoError(t, CheckCorsConfig(v))

	v.Set(FlagCorsCredentials, "yes")
	assert.Equal(t, &ErrInvalidCredentials{Value: "yes"}, CheckCorsConfig(v))

	v.Set(FlagCorsOrigin, "")
	assert.Equal(t, ErrMissingOrigin, CheckCorsConfig(v))
}
