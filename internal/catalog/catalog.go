package catalog

import (
	"cmp"
	"context"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Source supplies the authoritative plant list
type Source interface {
	GetPlants(ctx context.Context) ([]domain.Plant, error)
}

// Seed is the on-disk catalog document
type Seed struct {
	Plants []domain.Plant `yaml:"plants"`
	Levels map[int]int    `yaml:"levels"`
}

// ParseSeed decodes a catalog document
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for _, p := range seed.Plants {
		if p.ID <= 0 || p.Name == "" || p.GrowTime <= 0 {
			return nil, fmt.Errorf("%w: catalog entry %d is incomplete", domain.ErrInvalidInput, p.ID)
		}
	}
	return &seed, nil
}

type cachedPlantEntry struct {
	Version  string
	Plant    domain.Plant
	CachedAt time.Time
}

// Catalog resolves plants by id. Entries fetched from the authority are
// cached with a TTL; the embedded defaults answer whenever the cache is cold.
type Catalog struct {
	source   Source
	lru      *expirable.LRU[int, *cachedPlantEntry]
	defaults map[int]domain.Plant
	levels   LevelTable
	fold     cases.Caser
	mu       sync.Mutex
}

// New creates a catalog backed by source. A nil source serves defaults only.
func New(source Source, ttl time.Duration) (*Catalog, error) {
	seed, err := ParseSeed(defaultCatalogYAML)
	if err != nil {
		return nil, err
	}
	return NewWithSeed(source, seed, ttl), nil
}

// NewWithSeed creates a catalog with explicit defaults
func NewWithSeed(source Source, seed *Seed, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	defaults := make(map[int]domain.Plant, len(seed.Plants))
	for _, p := range seed.Plants {
		defaults[p.ID] = p
	}
	return &Catalog{
		source:   source,
		lru:      expirable.NewLRU[int, *cachedPlantEntry](DefaultCacheSize, nil, ttl),
		defaults: defaults,
		levels:   NewLevelTable(seed.Levels),
		fold:     cases.Fold(),
	}
}

// Refresh reloads the cache from the source. On failure the previous cache
// contents (or the defaults) keep serving and the error is returned.
func (c *Catalog) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if c.source == nil {
		return nil
	}

	plants, err := c.source.GetPlants(ctx)
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues(metrics.ResultError).Inc()
		log.Warn(LogMsgRefreshFailed, "error", err)
		return err
	}
	if len(plants) == 0 {
		metrics.CatalogRefreshes.WithLabelValues(metrics.ResultInvalid).Inc()
		log.Warn(LogMsgRefreshEmpty)
		return nil
	}

	now := time.Now()
	c.mu.Lock()
	c.lru.Purge()
	for _, p := range plants {
		c.lru.Add(p.ID, &cachedPlantEntry{Version: CacheSchemaVersion, Plant: p, CachedAt: now})
	}
	c.mu.Unlock()

	metrics.CatalogRefreshes.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgRefreshSucceeded, "plants", len(plants))
	return nil
}

// Get looks up a plant by catalog id
func (c *Catalog) Get(id int) (domain.Plant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lru.Len() > 0 {
		entry, ok := c.lru.Get(id)
		if ok && entry.Version == CacheSchemaVersion {
			return entry.Plant, true
		}
		if ok {
			c.lru.Remove(id)
		}
		return domain.Plant{}, false
	}

	p, ok := c.defaults[id]
	return p, ok
}

// All returns every plant ordered by id
func (c *Catalog) All() []domain.Plant {
	c.mu.Lock()
	var out []domain.Plant
	for _, entry := range c.lru.Values() {
		if entry.Version == CacheSchemaVersion {
			out = append(out, entry.Plant)
		}
	}
	c.mu.Unlock()

	if len(out) == 0 {
		out = make([]domain.Plant, 0, len(c.defaults))
		for _, p := range c.defaults {
			out = append(out, p)
		}
	}

	slices.SortFunc(out, func(a, b domain.Plant) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Search filters by case-folded name substring and orders by sortKey.
// An empty sortKey keeps id order.
func (c *Catalog) Search(query, sortKey string) ([]domain.Plant, error) {
	less, err := sortFunc(sortKey)
	if err != nil {
		return nil, err
	}

	all := c.All()
	needle := c.fold.String(strings.TrimSpace(query))

	out := make([]domain.Plant, 0, len(all))
	for _, p := range all {
		if needle == "" || strings.Contains(c.fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}

	if less != nil {
		slices.SortStableFunc(out, less)
	}
	return out, nil
}

// Levels returns the level table
func (c *Catalog) Levels() LevelTable {
	return c.levels
}

func sortFunc(key string) (func(a, b domain.Plant) int, error) {
	switch key {
	case "":
		return nil, nil
	case SortPriceAsc:
		return func(a, b domain.Plant) int { return cmp.Compare(a.Price, b.Price) }, nil
	case SortPriceDesc:
		return func(a, b domain.Plant) int { return cmp.Compare(b.Price, a.Price) }, nil
	case SortTimeAsc:
		return func(a, b domain.Plant) int { return cmp.Compare(a.GrowTime, b.GrowTime) }, nil
	case SortTimeDesc:
		return func(a, b domain.Plant) int { return cmp.Compare(b.GrowTime, a.GrowTime) }, nil
	case SortRewardAsc:
		return func(a, b domain.Plant) int { return cmp.Compare(a.Reward, b.Reward) }, nil
	case SortRewardDesc:
		return func(a, b domain.Plant) int { return cmp.Compare(b.Reward, a.Reward) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q (want one of %s)", domain.ErrInvalidInput, key, strings.Join(SortKeys, ", "))
	}
}
