// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/analyst/pkg/cli/backend"
	"github.com/spatialcurrent/analyst/pkg/cli/http"
	"github.com/spatialcurrent/analyst/pkg/cli/logging"
	"github.com/spatialcurrent/analyst/pkg/cli/runtime"
	"github.com/spatialcurrent/analyst/pkg/config"
)

func serveFunction(gitBranch string, gitCommit string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		v, err := config.NewViper(cmd)
		if err != nil {
			return errors.Wrap(err, "error initializing viper")
		}

		if err := CheckServeConfig(v, args); err != nil {
			return err
		}

		verbose := v.GetBool(logging.FlagVerbose)

		if verbose {
			if err := config.PrintViperSettings(os.Stderr, v); err != nil {
				return err
			}
		}

		maxProcs := runtime.ApplyRuntimeConfig(v)

		logger := logging.NewLoggerFromViper(v)

		messages := make(chan interface{}, 10000)
		logger.ListenInfo(messages, nil)

		handler := NewRouter(&NewRouterInput{
			Viper:     v,
			Logger:    logger,
			GitBranch: gitBranch,
			GitCommit: gitCommit,
		})

		address := v.GetString(http.FlagHttpAddress)
		httpTimeoutIdle := v.GetDuration(http.FlagHttpTimeoutIdle)
		httpTimeoutRead := v.GetDuration(http.FlagHttpTimeoutRead)
		httpTimeoutWrite := v.GetDuration(http.FlagHttpTimeoutWrite)
		gracefulShutdown := v.GetBool(http.FlagHttpGracefulShutdown)
		gracefulShutdownWait := v.GetDuration(http.FlagHttpGracefulShutdownWait)

		messages <- map[string]interface{}{
			"msg":                  "configuring server",
			"address":              address,
			"backendUrl":           v.GetString(backend.FlagBackendUrl),
			"loginUrl":             backend.LoginUrl(v),
			"maxProcs":             maxProcs,
			"httpTimeoutIdle":      httpTimeoutIdle.String(),
			"httpTimeoutRead":      httpTimeoutRead.String(),
			"httpTimeoutWrite":     httpTimeoutWrite.String(),
			"gracefulShutdown":     gracefulShutdown,
			"gracefulShutdownWait": gracefulShutdownWait.String(),
		}

		srv := &stdhttp.Server{
			Addr:         address,
			IdleTimeout:  httpTimeoutIdle,
			ReadTimeout:  httpTimeoutRead,
			WriteTimeout: httpTimeoutWrite,
			Handler:      handler,
		}

		logger.Flush()

		if gracefulShutdown {
			go func() {
				logger.Info("starting server with graceful shutdown")
				logger.InfoF("listening on %s", srv.Addr)
				logger.Flush()
				if err := srv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			}()

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			<-c
			logger.Info("received signal for graceful shutdown of server")
			logger.Flush()
			ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownWait)
			defer cancel()
			err := srv.Shutdown(ctx)
			logger.Close()
			if err != nil {
				return errors.Wrap(err, "error shutting down server")
			}
			return nil
		}

		logger.Info("starting server without graceful shutdown")
		logger.InfoF("listening on %s", srv.Addr)
		logger.Flush()
		logger.Fatal(srv.ListenAndServe())

		return nil
	}
}
