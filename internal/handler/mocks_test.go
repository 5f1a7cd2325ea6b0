package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

// MockSession mocks the GardenSession interface
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Snapshot() session.Snapshot {
	args := m.Called()
	return args.Get(0).(session.Snapshot)
}

func (m *MockSession) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSession) Loaded() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSession) SelectItem(ctx context.Context, instanceID string) (domain.InventoryItem, error) {
	args := m.Called(ctx, instanceID)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}

func (m *MockSession) CancelSelection(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSession) outcome(args mock.Arguments) (*session.Outcome, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Outcome), args.Error(1)
}

func (m *MockSession) BuyPlant(ctx context.Context, plantID int) (*session.Outcome, error) {
	return m.outcome(m.Called(ctx, plantID))
}

func (m *MockSession) PlantSelected(ctx context.Context, bedID int) (*session.Outcome, error) {
	return m.outcome(m.Called(ctx, bedID))
}

func (m *MockSession) Harvest(ctx context.Context, bedID int) (*session.Outcome, error) {
	return m.outcome(m.Called(ctx, bedID))
}

func (m *MockSession) UnlockBed(ctx context.Context, bedID int) (*session.Outcome, error) {
	return m.outcome(m.Called(ctx, bedID))
}

// MockPinger mocks database.Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
