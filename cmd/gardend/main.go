// Command gardend runs one garden session against the remote authority and
// serves it on a local HTTP API.
//
// @title MagicGarden session API
// @version 1.0
// @description Local API for reading garden snapshots and submitting player intents.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/MagicGarden_Go/docs"
	"github.com/osse101/MagicGarden_Go/internal/bootstrap"
	"github.com/osse101/MagicGarden_Go/internal/catalog"
	"github.com/osse101/MagicGarden_Go/internal/client"
	"github.com/osse101/MagicGarden_Go/internal/config"
	"github.com/osse101/MagicGarden_Go/internal/journal"
	"github.com/osse101/MagicGarden_Go/internal/notify"
	"github.com/osse101/MagicGarden_Go/internal/scheduler"
	"github.com/osse101/MagicGarden_Go/internal/server"
	"github.com/osse101/MagicGarden_Go/internal/session"
	"github.com/osse101/MagicGarden_Go/internal/sse"
	"github.com/osse101/MagicGarden_Go/internal/stream"
	"github.com/osse101/MagicGarden_Go/internal/worker"
)

const (
	journalCleanupInterval = 24 * time.Hour
	initialLoadTimeout     = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("gardend failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journ, err := bootstrap.BuildJournal(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = journ.Close()
		return err
	}

	authority, err := client.NewAPIClient(cfg.APIBaseURL, cfg.AuthorityAPIKey,
		client.WithRetry(cfg.AuthorityRetryMax, cfg.AuthorityRetryDelay),
		client.WithReadTimeout(cfg.AuthorityTimeout),
	)
	if err != nil {
		_ = journ.Close()
		return err
	}

	plants, err := catalog.New(authority, cfg.CatalogCacheTTL)
	if err != nil {
		_ = journ.Close()
		return err
	}

	notifications := notify.NewChannel(notify.WithWindow(cfg.Tuning.NotificationWindow))
	sess := session.New(cfg.PlayerID, authority, plants, notifications, events.Bus)

	sseHub := sse.NewHub(sse.WithKeepalive(cfg.Tuning.SSEKeepalive))
	sseHub.Start()
	streamHub := stream.NewHub(sess)
	sess.Observe(streamHub.Observer())

	bootstrap.RegisterEventHandlers(ctx, bootstrap.EventHandlerDependencies{
		Events:        events,
		Journal:       journ.Service,
		Notifications: notifications,
		SSEHub:        sseHub,
	})

	// A failed first load leaves the daemon up but not ready; /session/reload retries
	loadCtx, cancelLoad := context.WithTimeout(ctx, initialLoadTimeout)
	if err := sess.Load(loadCtx); err != nil {
		slog.Error("Initial session load failed", "error", err)
	}
	cancelLoad()

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start(ctx)

	sched := scheduler.New(ctx, pool)
	sched.ScheduleNow(cfg.TickInterval, session.NewTickJob(sess))
	sched.Schedule(cfg.CatalogRefreshInterval, catalog.NewRefreshJob(plants))
	if journ.Enabled() {
		sched.ScheduleNow(journalCleanupInterval, journal.NewCleanupJob(journ.Service, cfg.JournalRetentionDays))
	}

	srv, err := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Dependencies{
		Session:      sess,
		Catalog:      plants,
		Notification: notifications,
		Journal:      journ.Service,
		DB:           journ.DB,
		Events:       sseHub,
		Stream:       streamHub,
	})
	if err != nil {
		_ = journ.Close()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case runErr = <-serverErr:
		slog.Error("Server stopped unexpectedly", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Tuning.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		Pool:               pool,
		Session:            sess,
		Notifications:      notifications,
		SSEHub:             sseHub,
		StreamHub:          streamHub,
		ResilientPublisher: events.Publisher,
		Journal:            journ,
	})

	return runErr
}
