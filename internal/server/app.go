// Package server initializes and runs the portfolio backend. It opens the
// database, applies schema migrations, wires the services to the HTTP API,
// and handles graceful shutdown on OS signals.
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

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sharandeepreddy/pf/internal/logging"
	"github.com/sharandeepreddy/pf/internal/server/config"
	"github.com/sharandeepreddy/pf/internal/server/httpapi"
	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
	"github.com/sharandeepreddy/pf/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	srv := httpapi.NewServer(cfg.Addr, logger, httpapi.Deps{
		Contacts:     services.NewContactService(db, m),
		Chat:         services.NewChatService(db, m),
		Analytics:    services.NewAnalyticsService(db, m),
		Resume:       services.NewResumeService(db, m, cfg),
		Certificates: services.NewCertificateService(db, m),
		Identity:     identity.NewHeaderResolver(),
		DB:           db,
	})

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
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

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
