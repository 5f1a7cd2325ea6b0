package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/MagicGarden_Go/internal/config"
	"github.com/osse101/MagicGarden_Go/internal/event"
)

// EventSystem holds the live bus every component publishes to and the
// journal's own bus behind a retrying publisher. A slow or failing journal
// never fails a session publish.
type EventSystem struct {
	Bus        *event.MemoryBus
	JournalBus *event.MemoryBus
	Publisher  *event.ResilientPublisher
}

// InitializeEventSystem creates the buses and the resilient publisher.
// Zero retry settings fall back to defaults.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	journalBus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(journalBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	sys := &EventSystem{
		Bus:        event.NewMemoryBus(),
		JournalBus: journalBus,
		Publisher:  publisher,
	}

	// Action outcomes cross to the journal side through the publisher
	forward := func(ctx context.Context, evt event.Event) error {
		return publisher.Publish(ctx, evt)
	}
	sys.Bus.Subscribe(event.ActionConfirmed, forward)
	sys.Bus.Subscribe(event.ActionFailed, forward)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return sys, nil
}
