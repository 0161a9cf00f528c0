package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"todo-backend/config"
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/pkg/registry"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	log := logger.New()
	defer log.Sync()

	client := newDBClient(log)
	ctrl := newController(client)

	e := router.New(ctrl, log, router.Options{
		StaticDir: config.C.Static.Dir,
		IndexFile: config.C.Static.Index,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr, shutdownErr := serve(ctx, func() error {
		log.Infof("Todo API server running at http://localhost:%s", config.C.Server.Address)
		return e.Start(":" + config.C.Server.Address)
	}, e.Shutdown, client)

	if shutdownErr != nil {
		log.Errorw("error during shutdown", "error", shutdownErr)
	} else {
		log.Info("Closed SQLite database")
	}
	if serveErr != nil {
		log.Errorw("server stopped", "error", serveErr)
		log.Sync()
		os.Exit(1)
	}
}

// serve runs start until it fails or ctx is done. Either way the server is
// stopped and the database closed before serve returns.
func serve(
	ctx context.Context,
	start func() error,
	stopServer func(context.Context) error,
	client *sqlx.DB,
) (serveErr error, shutdownErr error) {
	errCh := make(chan error, 1)
	go func() {
		if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	return serveErr, shutdown(stopServer, client)
}

func newDBClient(log *zap.SugaredLogger) *sqlx.DB {
	path := config.C.Database.Path
	if abs, err := filepath.Abs(path); err == nil && path != ":memory:" {
		path = abs
	}
	log.Infow("opening database", "path", path)

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalw("Failed to open db connection", "error", err)
	}
	log.Info("Connected to SQLite database")
	return client
}

func newController(client *sqlx.DB) controller.Controller {
	r := registry.New(client)
	return r.NewController()
}

// shutdown stops the server and then closes the database. Every step runs
// even if an earlier one fails.
func shutdown(stopServer func(context.Context) error, client *sqlx.DB) error {
	timeout := time.Duration(config.C.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result error
	if err := stopServer(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := client.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}
