package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/cmd/plx_sandbox/handlers"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/utils/echoutil"
)

var API_ROOT = "/api/v1"

// grace period for requests in flight on shutdown.
var ShutdownTimeout = 15 * time.Second

func BuildServer(conf *sandbox.SandboxConfig, docs kdb.DocumentInterface, loglevel string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	echoutil.SetLevel(e, loglevel)
	e.HTTPErrorHandler = echoutil.ErrorHandler(e)

	// logging for server-side latency.
	e.Use(echoutil.LogHandlerFunc)

	handlers.Mount(e.Group(API_ROOT), conf, docs)

	return e
}

// Serve runs server on addr until ctx is done or the server fails, and shuts it down.
//
// docs is closed once after the server stops. It returns the exit code.
func Serve(ctx context.Context, server *echo.Echo, addr string, docs kdb.DocumentInterface) int {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ch <- err
		}
	}()

	exit := 0
	select {
	case <-ctx.Done():
		server.Logger.Infof("context has been done: %s, cause: %s", ctx.Err(), context.Cause(ctx))
	case err := <-ch:
		if err != nil {
			server.Logger.Error("server stops with error:", err)
			exit = 1
		}
	}

	server.Logger.Info("shutting down...")
	graceful, gcancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer gcancel()
	if err := server.Shutdown(graceful); err != nil {
		server.Logger.Errorf("shutdown with error. %+v", err)
		exit = 1
	}
	if err := docs.Close(); err != nil {
		server.Logger.Errorf("closing store with error. %+v", err)
		exit = 1
	}
	return exit
}
