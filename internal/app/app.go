package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/confcentral/confcentral/internal/cache"
	"github.com/confcentral/confcentral/internal/config"
	"github.com/confcentral/confcentral/internal/handler"
	"github.com/confcentral/confcentral/internal/middleware"
	"github.com/confcentral/confcentral/internal/notification"
	"github.com/confcentral/confcentral/internal/repository"
	"github.com/confcentral/confcentral/internal/router"
	"github.com/confcentral/confcentral/internal/scheduler"
	"github.com/confcentral/confcentral/internal/service"
	"github.com/confcentral/confcentral/internal/store"
	"github.com/confcentral/confcentral/internal/tasks"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      store.Store
	queue      *tasks.Queue
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ConfCentral",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	if a.cfg.Store.Engine == "memory" {
		a.store = store.NewMemory()
		a.log.Warn("using in-memory entity store, data will not survive restarts")
		return nil
	}

	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Store.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Store.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Store.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.store = store.NewPostgres(db)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Store.Postgres.Host),
		logger.Int("port", a.cfg.Store.Postgres.Port),
		logger.String("database", a.cfg.Store.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	repo := repository.New(a.store)
	announcementCache := cache.NewAnnouncements()
	mailer := notification.NewMailer(
		a.cfg.Mail.SMTPHost,
		a.cfg.Mail.SMTPPort,
		a.cfg.Mail.From,
		a.log,
	)

	a.queue = tasks.New(a.cfg.Tasks.Workers, a.cfg.Tasks.Buffer, a.log)

	conferenceService := service.NewConferenceService(repo, a.queue, a.log)
	sessionService := service.NewSessionService(repo, a.queue, a.log)
	profileService := service.NewProfileService(repo)
	wishlistService := service.NewWishlistService(repo)
	announcementService := service.NewAnnouncementService(repo, announcementCache, a.log)

	tasks.RegisterHandlers(a.queue, mailer, announcementService)

	a.scheduler = scheduler.New(
		announcementService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		conferenceService,
		sessionService,
		profileService,
		wishlistService,
		announcementService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.queue.Start(ctx)
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.queue.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "task queue drained")

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "entity store closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Store.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
