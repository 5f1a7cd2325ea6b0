package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Service records dispatcher outcomes and serves them back
type Service interface {
	// Subscribe registers the journal on the action event types
	Subscribe(bus event.Bus)

	// List returns entries newest first
	List(ctx context.Context, filter Filter) ([]Entry, error)

	// Export writes matching entries as zstd-compressed JSON lines
	Export(ctx context.Context, w io.Writer, filter Filter) (int, error)

	// CleanupOldEntries removes entries past the retention period
	CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a journal service over repo
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ActionConfirmed, s.handleEvent)
	bus.Subscribe(event.ActionFailed, s.handleEvent)
}

// handleEvent stores one action event. A storage error is returned so a
// resilient publisher can retry it.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.ActionPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeFailed, LogFieldError, err)
		metrics.JournalWrites.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil
	}

	entry := EntryFromPayload(payload)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	if err := s.repo.Record(ctx, entry); err != nil {
		metrics.JournalWrites.WithLabelValues(metrics.ResultError).Inc()
		log.Error(LogMsgRecordFailed, LogFieldActionType, entry.ActionType, LogFieldError, err)
		return fmt.Errorf("failed to record %s: %w", entry.ActionType, err)
	}

	metrics.JournalWrites.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Debug(LogMsgRecorded, LogFieldActionType, entry.ActionType, LogFieldRequestID, entry.RequestID)
	return nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]Entry, error) {
	filter.Limit = filter.EffectiveLimit()
	return s.repo.List(ctx, filter)
}

func (s *service) Export(ctx context.Context, w io.Writer, filter Filter) (int, error) {
	entries, err := s.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("failed to create zstd writer: %w", err)
	}

	enc := json.NewEncoder(zw)
	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			zw.Close()
			return i, fmt.Errorf("failed to encode entry %d: %w", e.ID, err)
		}
	}
	if err := zw.Close(); err != nil {
		return len(entries), fmt.Errorf("failed to flush export: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgExportCompleted, LogFieldCount, len(entries))
	return len(entries), nil
}

func (s *service) CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return s.repo.Cleanup(ctx, retentionDays)
}

// EntryFromPayload maps an action event payload onto a journal entry
func EntryFromPayload(p event.ActionPayloadV1) Entry {
	e := Entry{
		RequestID:   p.RequestID,
		PlayerID:    p.PlayerID,
		ActionType:  string(p.ActionType),
		BedID:       p.BedID,
		PlantID:     p.PlantID,
		Success:     p.Success,
		Message:     p.Message,
		Error:       p.Error,
		CoinsChange: p.CoinsChange,
		CoinsAfter:  p.CoinsAfter,
		DurationMs:  p.DurationMs,
	}
	if p.Timestamp > 0 {
		e.CreatedAt = time.Unix(p.Timestamp, 0).UTC()
	}
	return e
}
