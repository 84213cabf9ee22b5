package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/archive"
	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/config"
	dbpkg "github.com/BruksfildServices01/sales-calendar/internal/db"
	"github.com/BruksfildServices01/sales-calendar/internal/infra/repository"
	"github.com/BruksfildServices01/sales-calendar/internal/jobs"
	"github.com/BruksfildServices01/sales-calendar/internal/logging"
	"github.com/BruksfildServices01/sales-calendar/internal/middleware"
	"github.com/BruksfildServices01/sales-calendar/internal/notify"
	"github.com/BruksfildServices01/sales-calendar/internal/observability/metrics"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/routes"
	"github.com/BruksfildServices01/sales-calendar/internal/timezone"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
	ucDashboard "github.com/BruksfildServices01/sales-calendar/internal/usecase/dashboard"
	"github.com/BruksfildServices01/sales-calendar/internal/validators"
)

const shutdownTimeout = 15 * time.Second

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sales, err := config.LoadSales(cfg.SalesConfigPath)
	if err != nil {
		return err
	}
	loc := timezone.Location(cfg.Timezone)

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return err
	}
	repo := repository.NewAppointmentGormRepository(db, loc)

	// ======================================================
	// CHANGE FEED / AUDIT / METRICS
	// ======================================================
	var broker realtime.Broker = realtime.NewMemoryBroker()
	if cfg.RedisURL != "" {
		client, err := realtime.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		broker = realtime.NewRedisBroker(client, "", logger)
		logger.Info("change feed on redis")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)
	m := metrics.New(nil)

	recorder := &changes.Recorder{
		Audit:   auditDispatcher,
		Broker:  broker,
		Metrics: m,
		Log:     logger,
	}

	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger, m),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.ActorMiddleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Repo:    repo,
		Sales:   sales,
		Loc:     loc,
		Broker:  broker,
		Changes: recorder,
		Metrics: m,
		Log:     logger,
	})

	// ======================================================
	// DAILY REPORT
	// ======================================================
	var store *archive.Store
	if cfg.S3Bucket != "" {
		store = archive.NewStore(archive.NewS3Client(cfg), cfg.S3Bucket, logger)
	}
	notifier := notify.FromToken(cfg.SlackBotToken, cfg.SlackReportChannel, logger)

	report := jobs.NewDailyReport(
		ucDashboard.NewGetDashboard(repo, sales, m, logger),
		store,
		notifier,
		auditDispatcher,
		loc,
		logger,
	)
	scheduler, err := jobs.NewScheduler(cfg.ReportSchedule, loc, report, logger)
	if err != nil {
		return err
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	scheduler.Stop(shutdownCtx)
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("audit drain", zap.Error(err))
	}
	return nil
}
