// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/analyst/pkg/serializer"
)

// PrintViperSettings writes the viper settings as sorted properties.
func PrintViperSettings(w io.Writer, v *viper.Viper) error {
	b, err := serializer.SerializeBytes(v.AllSettings(), "properties", false, true, 0)
	if err != nil {
		return errors.Wrap(err, "error serializing viper settings")
	}
	_, err = fmt.Fprintf(w, "=================================================\nViper:\n-------------------------------------------------\n%s=================================================\n", b)
	return err
}
