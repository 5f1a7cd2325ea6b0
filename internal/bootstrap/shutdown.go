package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/notify"
	"github.com/osse101/MagicGarden_Go/internal/scheduler"
	"github.com/osse101/MagicGarden_Go/internal/session"
	"github.com/osse101/MagicGarden_Go/internal/sse"
	"github.com/osse101/MagicGarden_Go/internal/stream"
	"github.com/osse101/MagicGarden_Go/internal/worker"
)

// Stopper stops accepting work
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             Stopper
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	Session            *session.Session
	Notifications      *notify.Channel
	SSEHub             *sse.Hub
	StreamHub          *stream.Hub
	ResilientPublisher *event.ResilientPublisher
	Journal            *Journal
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. scheduler and worker pool (no more ticks or refreshes)
//  3. session (an in-flight response is discarded)
//  4. notification channel and stream hubs
//  5. resilient publisher (flush pending journal events), then the journal
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Session != nil {
		slog.Info(LogMsgShuttingDownSession)
		c.Session.Close(ctx)
	}

	slog.Info(LogMsgShuttingDownStreams)
	if c.Notifications != nil {
		c.Notifications.Close()
	}
	if c.SSEHub != nil {
		c.SSEHub.Stop()
	}
	if c.StreamHub != nil {
		c.StreamHub.Close()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if err := c.Journal.Close(); err != nil {
		slog.Error(LogMsgJournalCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
