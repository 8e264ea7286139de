package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/config"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/handler"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/notify"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability/middleware"
)

const serviceName = "medication-helper"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to flush telemetry", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	medicationRepo := repository.NewMedicationRepository(db)
	vitalsRepo := repository.NewVitalsRepository(db)

	medicationUseCase := app.NewMedicationUseCase(medicationRepo)
	vitalsUseCase := app.NewVitalsUseCase(vitalsRepo)
	contactUseCase := app.NewContactUseCase(repository.NewContactRepository(db))
	profileUseCase := app.NewProfileUseCase(repository.NewProfileRepository(db))
	dashboardUseCase := app.NewDashboardUseCase(profileUseCase, medicationRepo, vitalsRepo)

	notifiers, err := initNotifiers(cfg.Telegram, publisher)
	if err != nil {
		slog.Error("failed to initialize notifiers", "error", err)
		return 1
	}

	dispatcher, err := app.NewReminderDispatcher(medicationUseCase, notifiers, app.DispatcherConfig{
		Tolerance:            cfg.Reminder.DueTolerance,
		SuppressionCacheSize: cfg.Reminder.SuppressionCacheSize,
	}, obs.ReminderMetrics)
	if err != nil {
		slog.Error("failed to create reminder dispatcher", "error", err)
		return 1
	}

	router := setupRouter(obs, []routeRegistrar{
		handler.NewMedicationHandler(medicationUseCase),
		handler.NewVitalsHandler(vitalsUseCase),
		handler.NewContactHandler(contactUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewDashboardHandler(dashboardUseCase, handler.ViewConfig{
			Theme: handler.Theme(cfg.UI.Theme),
		}),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	pollerCtx, cancelPoller := context.WithCancel(logging.WithModule(context.Background(), "reminder"))
	defer cancelPoller()

	var wg sync.WaitGroup

	wg.Go(func() {
		app.NewReminderPoller(dispatcher, cfg.Reminder.PollInterval).Run(pollerCtx)
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"address", cfg.Server.Address(),
			"database_driver", cfg.Database.Driver,
			"notifiers", len(notifiers),
		)
		serverErr <- srv.ListenAndServe()
	}()

	exitCode := 0

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			exitCode = 1
		}

	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "error", err)
			exitCode = 1
		}
	}

	cancelPoller()
	wg.Wait()

	slog.Info("server exited", "code", exitCode)

	return exitCode
}

func initDatabase(cfg config.DatabaseConfig, level slog.Level) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(cfg.Driver, cfg.SlowThreshold, level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initNotifiers(cfg config.TelegramConfig, publisher pubsub.Publisher) ([]app.Notifier, error) {
	notifiers := []app.Notifier{notify.NewLogNotifier(slog.Default())}

	if publisher != nil {
		notifiers = append(notifiers, notify.NewPublisherNotifier(publisher))
	}

	if cfg.Enabled() {
		telegram, err := notify.NewTelegramNotifier(cfg.BotToken, cfg.ChatID)
		if err != nil {
			return nil, err
		}

		notifiers = append(notifiers, telegram)
	}

	return notifiers, nil
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(obs *observability.Resources, handlers []routeRegistrar) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping", "/metrics"},
			Module:         "api",
			ModuleResolver: middleware.ModuleFromRoute("/api/v1"),
			TracerName:     serviceName,
			HTTPMetrics:    obs.HTTPMetrics,
		}),
		middleware.PanicRecoveryGin(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if h := obs.Metrics.Handler(); h != nil {
		router.GET("/metrics", gin.WrapH(h))
	}

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}
