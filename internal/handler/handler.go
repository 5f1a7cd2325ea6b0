package handler

import (
	"context"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

// GardenSession is the part of the session the HTTP layer drives
type GardenSession interface {
	Snapshot() session.Snapshot
	Load(ctx context.Context) error
	Loaded() bool
	SelectItem(ctx context.Context, instanceID string) (domain.InventoryItem, error)
	CancelSelection(ctx context.Context)
	BuyPlant(ctx context.Context, plantID int) (*session.Outcome, error)
	PlantSelected(ctx context.Context, bedID int) (*session.Outcome, error)
	Harvest(ctx context.Context, bedID int) (*session.Outcome, error)
	UnlockBed(ctx context.Context, bedID int) (*session.Outcome, error)
}

// CatalogSearcher filters and orders the plant catalog
type CatalogSearcher interface {
	Search(query, sortKey string) ([]domain.Plant, error)
}

// NotificationReader exposes the visible notification, if any
type NotificationReader interface {
	Current() (domain.Notification, bool)
}
