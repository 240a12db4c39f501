// Package server initializes and runs the application: it connects the
// document store, assembles the services and the HTTP router, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/mlaurent/userboard/internal/logging"
	"github.com/mlaurent/userboard/internal/server/config"
	"github.com/mlaurent/userboard/internal/server/httpapi"
	"github.com/mlaurent/userboard/internal/server/password"
	"github.com/mlaurent/userboard/internal/server/repositories/users"
	"github.com/mlaurent/userboard/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault("userboard")

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	repo := users.NewMongoRepository(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongo index error: %w", err)
	}

	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	authSvc := services.NewAuthService(repo, hasher, cfg)
	userSvc := services.NewUserService(repo, hasher)

	router := httpapi.NewRouter(httpapi.NewHandler(authSvc, userSvc, logger))

	return &App{
		config: cfg,
		logger: logger,
		client: client,
		server: &http.Server{Addr: cfg.Addr, Handler: router},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "server error", "error", err.Error())
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.client.Disconnect(disconnectCtx); err != nil {
		app.logger.Error(ctx, "mongo disconnect error", "error", err.Error())
	}
}
