package economy

import (
	"context"
	"sync"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Delta describes what a merge changed
type Delta struct {
	CoinsChange  int  `json:"coins_change"`
	LevelChanged bool `json:"level_changed"`
	ExpChanged   bool `json:"exp_changed"`
	Ambiguous    bool `json:"ambiguous,omitempty"`
	Clamped      bool `json:"clamped,omitempty"`
}

// State holds the player's coins, level and experience counters.
// It only changes through Load and Merge.
type State struct {
	mu  sync.RWMutex
	cur domain.Economy
}

// NewState creates a state seeded with initial
func NewState(initial domain.Economy) *State {
	return &State{cur: initial}
}

// Snapshot returns the current counters
func (s *State) Snapshot() domain.Economy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Load replaces every counter wholesale
func (s *State) Load(e domain.Economy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = e
}

// Affordable reports whether the player holds at least cost coins
func (s *State) Affordable(cost int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Coins >= cost
}

// Merge applies a confirmed server response.
//
// A reward credits coins; otherwise coinsSpent debits them. Level and
// experience fields replace the prior value only when present.
func (s *State) Merge(ctx context.Context, resp *domain.ActionResponse) Delta {
	var d Delta
	if resp == nil {
		return d
	}
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.cur.Coins
	switch {
	case resp.Reward != nil:
		if resp.CoinsSpent != nil {
			d.Ambiguous = true
			metrics.AmbiguousDeltas.Inc()
			log.Warn(LogMsgAmbiguousDelta, "reward", *resp.Reward, "coins_spent", *resp.CoinsSpent)
		}
		s.cur.Coins += *resp.Reward
	case resp.CoinsSpent != nil:
		s.cur.Coins -= *resp.CoinsSpent
	}

	if s.cur.Coins < 0 {
		d.Clamped = true
		metrics.CoinsClamped.Inc()
		log.Warn(LogMsgCoinsClamped, "coins", s.cur.Coins)
		s.cur.Coins = 0
	}
	d.CoinsChange = s.cur.Coins - before

	if resp.NewLevel != nil {
		d.LevelChanged = *resp.NewLevel != s.cur.Level
		s.cur.Level = *resp.NewLevel
	}
	if resp.CurrentExp != nil {
		d.ExpChanged = *resp.CurrentExp != s.cur.Experience
		s.cur.Experience = *resp.CurrentExp
	}
	if resp.ExpToNextLevel != nil {
		s.cur.ExpToNextLevel = *resp.ExpToNextLevel
	}

	log.Debug(LogMsgEconomyMerged, "coins", s.cur.Coins, "level", s.cur.Level, "experience", s.cur.Experience)
	return d
}

// ExperienceFraction returns experience / (experience + expToNext), or 0 when
// both are zero.
func (s *State) ExperienceFraction() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Fraction(s.cur)
}

// Fraction computes the experience fraction of e
func Fraction(e domain.Economy) float64 {
	denom := e.Experience + e.ExpToNextLevel
	if denom <= 0 {
		return 0
	}
	return float64(e.Experience) / float64(denom)
}
