// Package server wires the application together: configuration, database,
// migrations, services and the HTTP endpoint, with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lucasnerism/drivenpass/internal/cryptox"
	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/config"
	handler "github.com/lucasnerism/drivenpass/internal/server/handler/http"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/repomanager"
	"github.com/lucasnerism/drivenpass/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	cipher, err := cryptox.NewCipher(cfg.CryptrSecret)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}
	codec := services.NewSecretFieldCodec(cipher)

	userService := services.NewUserService(db, manager, cfg)
	noteService := services.NewNoteService(db, manager)
	cardService := services.NewCardService(db, manager, codec)
	credentialService := services.NewCredentialService(db, manager, codec)

	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		AccountHandler:    handler.NewAccountHandler(userService, logger),
		NoteHandler:       handler.NewNoteHandler(noteService, logger),
		CardHandler:       handler.NewCardHandler(cardService, logger),
		CredentialHandler: handler.NewCredentialHandler(credentialService, logger),
		Auth:              handler.NewBearerAuth(userService, []byte(cfg.JWTSecret), logger),
		Logger:            logger,
	})

	return &App{config: cfg, logger: logger, db: db, handler: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	server := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
