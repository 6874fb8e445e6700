// Package server initializes and runs the gateway: it wires the secret
// provider, credential store, blob store and services together and starts
// the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/storserv/storserv/internal/logging"
	"github.com/storserv/storserv/internal/server/auth"
	"github.com/storserv/storserv/internal/server/blob"
	"github.com/storserv/storserv/internal/server/config"
	"github.com/storserv/storserv/internal/server/creds"
	"github.com/storserv/storserv/internal/server/httpapi"
	"github.com/storserv/storserv/internal/server/keys"
	"github.com/storserv/storserv/internal/server/namespace"
	"github.com/storserv/storserv/internal/server/secrets"
	"github.com/storserv/storserv/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	secrets secrets.Provider
	server  *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl).With("instance", uuid.NewString())

	secretProvider, err := newSecretProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("secret provider init error: %w", err)
	}

	store, err := blob.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	credRepo, err := newCredRepository(ctx, cfg, store)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	tokenService := auth.NewService(secretProvider, cfg.TokenValidity)
	userService := users.NewService(
		creds.NewService(credRepo),
		namespace.NewResolver(cfg.NamespacePrefix),
		tokenService,
	)
	keyService := keys.NewService(store)

	handler := httpapi.NewHandler(userService, keyService, tokenService, logger)
	srv := httpapi.NewServer(cfg.EndpointAddr, logger, handler)

	return &App{config: cfg, logger: logger, secrets: secretProvider, server: srv}, nil
}

// newSecretProvider prefers a directly configured secret and falls back to
// the SSM parameter store.
func newSecretProvider(ctx context.Context, cfg *config.Config) (secrets.Provider, error) {
	if cfg.SecretKey != "" {
		return secrets.NewStaticProvider(cfg.SecretKey), nil
	}
	return secrets.NewSSMProviderFromEnv(ctx, cfg.S3Region, cfg.SecretParamName)
}

// newCredRepository selects the credential store: PostgreSQL when a DSN is
// configured (running the embedded migrations first), the users bucket
// otherwise.
func newCredRepository(ctx context.Context, cfg *config.Config, store blob.Store) (creds.Repository, error) {
	if cfg.DatabaseDSN == "" {
		return creds.NewS3Repository(store, cfg.UsersBucket), nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := creds.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return creds.NewPostgresRepository(db), nil
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

	app.logger.Info(ctx, "Starting app...")

	// The process must not serve traffic without a signing secret: probe it
	// eagerly so a missing or empty parameter fails startup, not the first
	// login.
	if _, err := app.secrets.Secret(ctx); err != nil {
		app.logger.Error(ctx, "cannot obtain signing secret", "error", err)
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

}
