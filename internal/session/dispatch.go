package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MagicGarden_Go/internal/client"
	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Dispatch runs one action through pre-validation, the authority, and the
// confirm-then-apply merge. At most one action is outstanding per session;
// a concurrent call returns ErrActionInFlight without contacting the authority.
func (s *Session) Dispatch(ctx context.Context, a Action) (*Outcome, error) {
	log := logger.FromContext(ctx).With("action", a.Type)
	label := string(a.Type)

	if !a.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, a.Type)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrSessionClosed
	}
	if !s.loaded {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotLoaded
	}
	if s.pending != nil {
		s.mu.Unlock()
		metrics.ActionsTotal.WithLabelValues(label, metrics.ResultBusy).Inc()
		log.Debug(LogMsgActionRefused)
		return nil, domain.ErrActionInFlight
	}

	req, userMsg, err := s.prevalidateLocked(a)
	if err != nil {
		coins := s.econ.Snapshot().Coins
		s.mu.Unlock()

		metrics.ActionsTotal.WithLabelValues(label, metrics.ResultInvalid).Inc()
		log.Info(LogMsgActionInvalid, "error", err)
		s.notifier.Post(domain.NotificationError, userMsg)
		s.publish(ctx, event.NewActionEvent(s.actionPayload(ctx, "", a, false, userMsg, 0, coins, 0)))
		s.notifyObservers(s.Snapshot())
		return nil, &RefusalError{Message: userMsg, Err: err}
	}

	p := &pending{id: uuid.NewString(), action: a, started: s.now()}
	if a.Type == domain.ActionPlantSeed {
		item := *s.selection
		p.item = &item
	}
	s.pending = p
	s.mu.Unlock()

	metrics.ActionsInFlight.Inc()
	defer s.release(p)

	log.Debug(LogMsgActionDispatched, "pending_id", p.id)
	resp, err := s.authority.PerformAction(ctx, req)
	elapsed := s.now().Sub(p.started)
	metrics.ActionDuration.WithLabelValues(label).Observe(elapsed.Seconds())

	s.mu.Lock()
	if s.closed || s.pending != p {
		s.mu.Unlock()
		metrics.DiscardedResponses.WithLabelValues(label).Inc()
		log.Warn(LogMsgResponseDiscarded, "pending_id", p.id)
		return nil, domain.ErrSessionClosed
	}

	if err != nil {
		coins := s.econ.Snapshot().Coins
		s.mu.Unlock()

		metrics.ActionsTotal.WithLabelValues(label, resultFor(err)).Inc()
		msg := failureMessage(err)
		log.Warn(LogMsgActionFailed, "pending_id", p.id, "error", err)
		s.notifier.Post(domain.NotificationError, msg)
		s.publish(ctx, event.NewActionEvent(s.actionPayload(ctx, p.id, a, false, msg, 0, coins, elapsed)))
		return nil, &RefusalError{Message: msg, Err: err}
	}

	out := s.applyLocked(ctx, p, resp)
	out.RequestID = p.id
	coins := out.Economy.Coins
	s.mu.Unlock()

	metrics.ActionsTotal.WithLabelValues(label, metrics.ResultSuccess).Inc()
	if kind, msg, ok := feedback(resp); ok {
		n := s.notifier.Post(kind, msg)
		out.Notification = &n
	}
	log.Info(LogMsgActionConfirmed, "pending_id", p.id, "coins_change", out.Delta.CoinsChange, "duration_ms", elapsed.Milliseconds())
	s.publish(ctx, event.NewActionEvent(s.actionPayload(ctx, p.id, a, true, resp.Message, out.Delta.CoinsChange, coins, elapsed)))
	return out, nil
}

// release clears the in-flight guard whatever the outcome
func (s *Session) release(p *pending) {
	s.mu.Lock()
	if s.pending == p {
		s.pending = nil
	}
	snap := s.snapshotLocked(s.now())
	s.mu.Unlock()

	metrics.ActionsInFlight.Dec()
	s.notifyObservers(snap)
}

// prevalidateLocked checks the intent against local state and builds the
// request. The returned message is the user-facing rejection text.
func (s *Session) prevalidateLocked(a Action) (domain.ActionRequest, string, error) {
	econ := s.econ.Snapshot()

	switch a.Type {
	case domain.ActionBuyPlant:
		plant, ok := s.catalog.Get(a.PlantID)
		if !ok {
			return domain.ActionRequest{}, domain.MsgInvalidPlant, fmt.Errorf("%w: %d", domain.ErrPlantNotFound, a.PlantID)
		}
		if econ.Coins < plant.Price {
			return domain.ActionRequest{}, domain.MsgNotEnoughCoins, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, plant.Price, econ.Coins)
		}
		return domain.NewBuyPlantRequest(s.playerID, plant.ID, plant.Price), "", nil

	case domain.ActionPlantSeed:
		if s.selection == nil {
			return domain.ActionRequest{}, domain.MsgSelectPlantFirst, domain.ErrNoSelection
		}
		bed, ok := findBed(s.beds, a.BedID)
		if !ok {
			return domain.ActionRequest{}, domain.MsgBedNotFound, fmt.Errorf("%w: bed %d", domain.ErrInvalidTarget, a.BedID)
		}
		if bed.Locked {
			return domain.ActionRequest{}, domain.MsgBedLocked, fmt.Errorf("%w: bed %d", domain.ErrBedLocked, a.BedID)
		}
		if bed.Plant != nil {
			return domain.ActionRequest{}, domain.MsgBedOccupied, fmt.Errorf("%w: bed %d", domain.ErrBedOccupied, a.BedID)
		}
		plant := s.selection.Plant
		return domain.NewPlantSeedRequest(s.playerID, bed.ID, plant.ID, plant.GrowTime), "", nil

	case domain.ActionHarvest:
		bed, ok := findBed(s.beds, a.BedID)
		if !ok {
			return domain.ActionRequest{}, domain.MsgBedNotFound, fmt.Errorf("%w: bed %d", domain.ErrInvalidTarget, a.BedID)
		}
		if !bed.IsPlanted() {
			return domain.ActionRequest{}, domain.MsgNothingToHarvest, fmt.Errorf("%w: bed %d is empty", domain.ErrInvalidTarget, a.BedID)
		}
		if s.engine.Progress(s.now(), bed) < domain.MaxProgress {
			return domain.ActionRequest{}, domain.MsgNotReady, fmt.Errorf("%w: bed %d", domain.ErrNotReady, a.BedID)
		}
		return domain.NewHarvestRequest(s.playerID, bed.ID), "", nil

	case domain.ActionUnlockBed:
		bed, ok := findBed(s.beds, a.BedID)
		if !ok {
			return domain.ActionRequest{}, domain.MsgBedNotFound, fmt.Errorf("%w: bed %d", domain.ErrInvalidTarget, a.BedID)
		}
		if !bed.Locked {
			return domain.ActionRequest{}, domain.MsgBedAlreadyUnlocked, fmt.Errorf("%w: bed %d is unlocked", domain.ErrInvalidTarget, a.BedID)
		}
		if econ.Coins < domain.UnlockCost {
			return domain.ActionRequest{}, fmt.Sprintf(domain.MsgUnlockCostFormat, domain.UnlockCost),
				fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, domain.UnlockCost, econ.Coins)
		}
		return domain.NewUnlockBedRequest(s.playerID, bed.ID, domain.UnlockCost), "", nil
	}

	return domain.ActionRequest{}, domain.MsgActionFailed, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, a.Type)
}

// applyLocked merges a confirmed response into the aggregate
func (s *Session) applyLocked(ctx context.Context, p *pending, resp *domain.ActionResponse) *Outcome {
	log := logger.FromContext(ctx)
	a := p.action
	now := s.now()

	out := &Outcome{Action: a.Type, Response: resp, NewLevel: resp.NewLevel}
	out.Delta = s.econ.Merge(ctx, resp)

	switch a.Type {
	case domain.ActionBuyPlant:
		plant := resp.Plant
		if plant == nil {
			log.Warn(LogMsgMissingPlantPayload, "plant_id", a.PlantID)
			if p, ok := s.catalog.Get(a.PlantID); ok {
				plant = &p
			}
		}
		if plant != nil {
			item := s.ledger.Append(*plant)
			out.Item = &item
		}

	case domain.ActionPlantSeed:
		// The item sent to the server, whatever the selection is now
		planted := p.item.Plant
		if _, err := s.ledger.Remove(p.item.InstanceID); err != nil {
			log.Warn(LogMsgActionFailed, "error", err)
		}
		if s.selection != nil && s.selection.InstanceID == p.item.InstanceID {
			s.selection = nil
		}
		bed := resp.Bed
		if bed == nil {
			log.Warn(LogMsgMissingBedPayload, "bed_id", a.BedID)
			bed = &domain.Bed{ID: a.BedID, Plant: &planted, StartTime: &now, GrowTime: planted.GrowTime}
		}
		out.Bed = s.replaceBedLocked(now, *bed)

	case domain.ActionHarvest:
		bed := resp.Bed
		if bed == nil {
			log.Warn(LogMsgMissingBedPayload, "bed_id", a.BedID)
			bed = &domain.Bed{ID: a.BedID}
		}
		out.Bed = s.replaceBedLocked(now, *bed)

	case domain.ActionUnlockBed:
		bed := resp.Bed
		if bed == nil {
			log.Warn(LogMsgMissingBedPayload, "bed_id", a.BedID)
			bed = &domain.Bed{ID: a.BedID}
		}
		out.Bed = s.replaceBedLocked(now, *bed)
	}

	out.Economy = s.econ.Snapshot()
	return out
}

// replaceBedLocked swaps in the server's bed record and projects its progress
func (s *Session) replaceBedLocked(now time.Time, bed domain.Bed) *domain.Bed {
	b := bed.Normalize()
	b.Progress = s.engine.Progress(now, b)
	if !replaceBed(s.beds, b) {
		s.beds = append(s.beds, b)
	}
	c := b.Clone()
	return &c
}

func (s *Session) actionPayload(ctx context.Context, requestID string, a Action, success bool, msg string, coinsChange, coinsAfter int, elapsed time.Duration) event.ActionPayloadV1 {
	if requestID == "" {
		requestID = logger.GetRequestID(ctx)
	}
	p := event.ActionPayloadV1{
		RequestID:   requestID,
		PlayerID:    s.playerID,
		ActionType:  a.Type,
		Success:     success,
		CoinsChange: coinsChange,
		CoinsAfter:  coinsAfter,
		DurationMs:  elapsed.Milliseconds(),
		Timestamp:   s.now().Unix(),
	}
	if success {
		p.Message = msg
	} else {
		p.Error = msg
	}
	if a.Type == domain.ActionBuyPlant {
		p.PlantID = domain.IntPtr(a.PlantID)
	} else {
		p.BedID = domain.IntPtr(a.BedID)
	}
	return p
}

// feedback picks the notification for a confirmed response
func feedback(resp *domain.ActionResponse) (domain.NotificationKind, string, bool) {
	if resp.AnimationType == "" && resp.Message == "" {
		return "", "", false
	}
	kind := domain.NotificationKind(resp.AnimationType)
	if kind == "" {
		kind = successKind(resp)
	}
	return kind, resp.Message, true
}

func successKind(resp *domain.ActionResponse) domain.NotificationKind {
	switch {
	case resp.Reward != nil:
		return domain.NotificationHarvestSuccess
	case resp.Plant != nil:
		return domain.NotificationBuySuccess
	case resp.CoinsSpent != nil:
		return domain.NotificationUnlockSuccess
	default:
		return domain.NotificationPlantSuccess
	}
}

// failureMessage is the server detail when there is one
func failureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return domain.MsgActionFailed
}

func resultFor(err error) string {
	if errors.Is(err, domain.ErrActionRejected) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
