package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/freelancedesk/billable/internal/api"
	"github.com/freelancedesk/billable/internal/api/handler"
	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/internal/core/service"
	"github.com/freelancedesk/billable/internal/infrastructure/config"
	mongodb "github.com/freelancedesk/billable/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancedesk/billable/internal/infrastructure/db/redis"
	"github.com/freelancedesk/billable/internal/infrastructure/db/sqlite"
	"github.com/freelancedesk/billable/internal/infrastructure/queue"
)

const (
	shutdownTimeout = 10 * time.Second
	auditWorkers    = 4
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	// --- Storage ---
	store, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info().Str("path", cfg.SQLite.Path).Msg("sqlite ready")

	if cfg.SQLite.SeedOnStart {
		if err := seed(ctx, store, log); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	checks := map[string]handler.Checker{"sqlite": store}

	// --- Optional session revocation ---
	authOpts := []service.AuthOption{service.WithAuthLogger(log)}
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		authOpts = append(authOpts, service.WithRevoker(redisdb.NewSessionRevoker(rdb)))
		checks["redis"] = redisdb.NewChecker(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session revocation enabled")
	}

	// --- Optional audit trail ---
	var audit ports.AuditLog = service.NopAuditLog{}
	if cfg.Mongo.URI != "" {
		dispatcher, closeAudit, err := startAudit(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeAudit()
		audit = dispatcher
		checks["mongodb"] = dispatcher.checker
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}
	authOpts = append(authOpts, service.WithAuditLog(audit))

	// --- Services and router ---
	authService := service.NewAuthService(store, cfg.SessionSecret, cfg.SessionTTL, authOpts...)
	trackerService := service.NewTrackerService(store, audit, log)

	e, err := api.NewRouter(api.Deps{
		Auth:          authService,
		Tracker:       trackerService,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.Production(),
		Checks:        checks,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting billable server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server stopped gracefully")
	return nil
}

// auditSink is the running audit dispatcher plus the readiness check for its
// backing database.
type auditSink struct {
	*queue.AuditDispatcher
	checker handler.Checker
}

func startAudit(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auditSink, func(), error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, nil, err
	}

	repo := mongodb.NewAuditRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, nil, fmt.Errorf("audit indexes: %w", err)
	}

	dispatcher := queue.NewAuditDispatcher(auditWorkers, repo, log)
	dispatcher.Start(ctx)

	closeFn := func() {
		dispatcher.Close()
		disconnectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
	return &auditSink{AuditDispatcher: dispatcher, checker: mongodb.NewChecker(db)}, closeFn, nil
}
