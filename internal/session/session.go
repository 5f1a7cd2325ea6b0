package session

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/MagicGarden_Go/internal/client"
	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/economy"
	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/growth"
	"github.com/osse101/MagicGarden_Go/internal/inventory"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Catalog resolves plants for buy pre-validation
type Catalog interface {
	Get(id int) (domain.Plant, bool)
}

// Notifier is the single-slot feedback surface
type Notifier interface {
	Post(kind domain.NotificationKind, message string) domain.Notification
	Current() (domain.Notification, bool)
}

// Observer is called with a fresh snapshot after every tick and transition.
// It runs outside the session lock.
type Observer func(Snapshot)

// Session is the single owned aggregate for one player's garden. Its state
// changes only through Load, Tick, selection changes and confirmed actions.
type Session struct {
	playerID  string
	authority client.Authority
	catalog   Catalog
	notifier  Notifier
	bus       event.Bus
	engine    *growth.Engine
	now       func() time.Time

	mu        sync.Mutex
	username  string
	beds      []domain.Bed
	ledger    *inventory.Ledger
	econ      *economy.State
	selection *domain.InventoryItem
	pending   *pending
	loaded    bool
	closed    bool

	obsMu     sync.RWMutex
	observers []Observer
}

// Option configures a Session
type Option func(*Session)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLedger replaces the inventory ledger
func WithLedger(l *inventory.Ledger) Option {
	return func(s *Session) { s.ledger = l }
}

// New creates a session for playerID. bus may be nil.
func New(playerID string, authority client.Authority, catalog Catalog, notifier Notifier, bus event.Bus, opts ...Option) *Session {
	s := &Session{
		playerID:  playerID,
		authority: authority,
		catalog:   catalog,
		notifier:  notifier,
		bus:       bus,
		engine:    growth.NewEngine(),
		now:       time.Now,
		ledger:    inventory.NewLedger(),
		econ:      economy.NewState(domain.Economy{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlayerID returns the player this session belongs to
func (s *Session) PlayerID() string {
	return s.playerID
}

// Observe registers an observer
func (s *Session) Observe(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, o)
}

// Load fetches the player, garden and inventory and replaces the state wholesale
func (s *Session) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var (
		player *domain.Player
		beds   []domain.Bed
		plants []domain.Plant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		player, err = s.authority.GetPlayer(gctx, s.playerID)
		return err
	})
	g.Go(func() (err error) {
		beds, err = s.authority.GetGarden(gctx, s.playerID)
		return err
	})
	g.Go(func() (err error) {
		plants, err = s.authority.GetInventory(gctx, s.playerID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error(LogMsgSessionLoadFailed, "player_id", s.playerID, "error", err)
		return fmt.Errorf("failed to load session: %w", err)
	}

	now := s.now()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if s.pending != nil {
		s.mu.Unlock()
		return domain.ErrActionInFlight
	}
	normalized := make([]domain.Bed, len(beds))
	for i, b := range beds {
		normalized[i] = b.Normalize()
	}
	s.beds = s.engine.Recompute(now, normalized)
	s.ledger.Load(plants)
	s.econ.Load(player.Economy())
	s.username = player.Username
	s.selection = nil
	s.loaded = true
	payload := event.SessionPayloadV1{
		PlayerID: s.playerID,
		Beds:     len(s.beds),
		Items:    s.ledger.Len(),
		Coins:    player.Coins,
	}
	snap := s.snapshotLocked(now)
	s.mu.Unlock()

	log.Info(LogMsgSessionLoaded, "player_id", s.playerID, "beds", payload.Beds, "items", payload.Items, "coins", payload.Coins)
	s.publish(ctx, event.NewSessionEvent(event.SessionLoaded, payload))
	s.notifyObservers(snap)
	return nil
}

// Tick recomputes projected growth. A bed targeted by the in-flight action
// keeps its last projection until the response lands.
func (s *Session) Tick(ctx context.Context, now time.Time) {
	s.mu.Lock()
	if s.closed || !s.loaded {
		s.mu.Unlock()
		return
	}

	skip := 0
	if s.pending != nil && s.pending.action.Type != domain.ActionBuyPlant {
		skip = s.pending.action.BedID
	}

	before := s.beds
	after := make([]domain.Bed, len(before))
	ready := 0
	for i, b := range before {
		after[i] = b.Clone()
		if b.ID != skip {
			after[i].Progress = s.engine.Progress(now, b)
		}
		if after[i].IsReady() {
			ready++
		}
	}
	newlyReady := s.engine.NewlyReady(before, after)
	s.beds = after

	var readyBeds []domain.Bed
	for _, id := range newlyReady {
		if b, ok := findBed(after, id); ok {
			readyBeds = append(readyBeds, b.Clone())
		}
	}
	snap := s.snapshotLocked(now)
	s.mu.Unlock()

	metrics.GrowthTicks.Inc()
	metrics.BedsReady.Set(float64(ready))

	for _, b := range readyBeds {
		logger.FromContext(ctx).Debug(LogMsgBedReady, "bed_id", b.ID)
		s.publish(ctx, event.NewBedReadyEvent(b))
	}
	s.notifyObservers(snap)
}

// SelectItem marks an inventory item for planting. It may run while a
// plant_seed is in flight; that action keeps the item it was sent with.
func (s *Session) SelectItem(ctx context.Context, instanceID string) (domain.InventoryItem, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.InventoryItem{}, domain.ErrSessionClosed
	}
	item, ok := s.ledger.Get(instanceID)
	if !ok {
		s.mu.Unlock()
		return domain.InventoryItem{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, instanceID)
	}
	sel := item
	s.selection = &sel
	snap := s.snapshotLocked(s.now())
	s.mu.Unlock()

	s.publish(ctx, event.NewSelectionEvent(&item))
	s.notifyObservers(snap)
	return item, nil
}

// CancelSelection clears the selection. An in-flight plant_seed is not
// affected.
func (s *Session) CancelSelection(ctx context.Context) {
	s.mu.Lock()
	if s.selection == nil {
		s.mu.Unlock()
		return
	}
	s.selection = nil
	snap := s.snapshotLocked(s.now())
	s.mu.Unlock()

	s.publish(ctx, event.NewSelectionEvent(nil))
	s.notifyObservers(snap)
}

// BuyPlant dispatches buy_plant for a catalog entry
func (s *Session) BuyPlant(ctx context.Context, plantID int) (*Outcome, error) {
	return s.Dispatch(ctx, Action{Type: domain.ActionBuyPlant, PlantID: plantID})
}

// PlantSelected dispatches plant_seed for the selected item into bedID
func (s *Session) PlantSelected(ctx context.Context, bedID int) (*Outcome, error) {
	return s.Dispatch(ctx, Action{Type: domain.ActionPlantSeed, BedID: bedID})
}

// Harvest dispatches harvest for bedID
func (s *Session) Harvest(ctx context.Context, bedID int) (*Outcome, error) {
	return s.Dispatch(ctx, Action{Type: domain.ActionHarvest, BedID: bedID})
}

// UnlockBed dispatches unlock_bed for bedID
func (s *Session) UnlockBed(ctx context.Context, bedID int) (*Outcome, error) {
	return s.Dispatch(ctx, Action{Type: domain.ActionUnlockBed, BedID: bedID})
}

// Loaded reports whether the session holds authority state
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && !s.closed
}

// InFlight reports whether an action is outstanding
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Snapshot returns a deep copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(s.now())
}

// Close tears the session down. A response still outstanding is discarded
// when it arrives.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	hadPending := s.pending != nil
	s.pending = nil
	payload := event.SessionPayloadV1{
		PlayerID: s.playerID,
		Beds:     len(s.beds),
		Items:    s.ledger.Len(),
		Coins:    s.econ.Snapshot().Coins,
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionClosed, "player_id", s.playerID, "pending_discarded", hadPending)
	s.publish(ctx, event.NewSessionEvent(event.SessionClosed, payload))
}

func (s *Session) snapshotLocked(now time.Time) Snapshot {
	snap := Snapshot{
		PlayerID:  s.playerID,
		Username:  s.username,
		Loaded:    s.loaded,
		Closed:    s.closed,
		Beds:      make([]BedView, 0, len(s.beds)),
		Inventory: s.ledger.Items(),
		Economy:   s.econ.Snapshot(),
		TakenAt:   now,
	}
	snap.ExperienceFraction = economy.Fraction(snap.Economy)

	for _, b := range s.beds {
		c := b.Clone()
		snap.Beds = append(snap.Beds, BedView{
			ID:               c.ID,
			Plant:            c.Plant,
			Progress:         c.Progress,
			Locked:           c.Locked,
			StartTime:        c.StartTime,
			GrowTime:         c.GrowTime,
			Ready:            c.IsReady(),
			SecondsRemaining: int(math.Ceil(s.engine.Remaining(now, c).Seconds())),
		})
	}
	if s.selection != nil {
		sel := *s.selection
		snap.Selection = &sel
	}
	if s.pending != nil {
		snap.ActionInFlight = true
		snap.PendingAction = s.pending.action.Type
	}
	if s.notifier != nil {
		if n, ok := s.notifier.Current(); ok {
			snap.Notification = &n
		}
	}
	return snap
}

func (s *Session) notifyObservers(snap Snapshot) {
	s.obsMu.RLock()
	observers := append([]Observer(nil), s.observers...)
	s.obsMu.RUnlock()
	for _, o := range observers {
		o(snap)
	}
}

func (s *Session) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
	}
}

func findBed(beds []domain.Bed, id int) (domain.Bed, bool) {
	for _, b := range beds {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Bed{}, false
}

func replaceBed(beds []domain.Bed, bed domain.Bed) bool {
	for i := range beds {
		if beds[i].ID == bed.ID {
			beds[i] = bed
			return true
		}
	}
	return false
}
