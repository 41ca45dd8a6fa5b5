// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"github.com/spf13/pflag"
)

// InitHttpFlags initializes the http flags.
func InitHttpFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagHttpAddress, "a", DefaultHttpAddress, "http bind address")
	flag.Duration(FlagHttpTimeoutIdle, DefaultHttpTimeoutIdle, "the idle timeout for the http server")
	flag.Duration(FlagHttpTimeoutRead, DefaultHttpTimeoutRead, "the read timeout for the http server")
	flag.Duration(FlagHttpTimeoutWrite, DefaultHttpTimeoutWrite, "the write timeout for the http server, which must cover upstream result requests")
	flag.Bool(FlagHttpMiddlewareDebug, false, "log every handled request")
	flag.Bool(FlagHttpMiddlewareRecover, false, "enable recovery middleware")
	flag.Bool(FlagHttpMiddlewareGzip, false, "enable gzip middleware")
	flag.Bool(FlagHttpMiddlewareCors, false, "enable CORS middleware")
	flag.Bool(FlagHttpGracefulShutdown, false, "enable graceful shutdown")
	flag.Duration(FlagHttpGracefulShutdownWait, DefaultGracefulShutdownWait, "the duration to wait for graceful shutdown")
}
