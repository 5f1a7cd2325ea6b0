package journal_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/journal"
	"github.com/osse101/MagicGarden_Go/mocks"
)

func intPtr(v int) *int { return &v }

func TestService_RecordsConfirmedAction(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	repo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return e.RequestID == "req-1" &&
			e.ActionType == string(domain.ActionHarvest) &&
			e.BedID != nil && *e.BedID == 2 &&
			e.Success &&
			e.CoinsChange == 75 &&
			e.CoinsAfter == 175 &&
			!e.CreatedAt.IsZero()
	})).Return(nil).Once()

	err := bus.Publish(context.Background(), event.NewActionEvent(event.ActionPayloadV1{
		RequestID:   "req-1",
		PlayerID:    "player-1",
		ActionType:  domain.ActionHarvest,
		BedID:       intPtr(2),
		Success:     true,
		CoinsChange: 75,
		CoinsAfter:  175,
	}))
	require.NoError(t, err)
}

func TestService_RecordsFailedAction(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	repo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return !e.Success && e.Error == "Not enough coins"
	})).Return(nil).Once()

	err := bus.Publish(context.Background(), event.NewActionEvent(event.ActionPayloadV1{
		RequestID:  "req-2",
		ActionType: domain.ActionBuyPlant,
		PlantID:    intPtr(3),
		Error:      "Not enough coins",
	}))
	require.NoError(t, err)
}

func TestService_StorageErrorPropagates(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	repo.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	err := bus.Publish(context.Background(), event.NewActionEvent(event.ActionPayloadV1{
		RequestID:  "req-3",
		ActionType: domain.ActionUnlockBed,
		Success:    true,
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_IgnoresUndecodablePayload(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	err := bus.Publish(context.Background(), event.Event{
		Version: "1.0",
		Type:    event.ActionConfirmed,
		Payload: "not a payload",
	})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestService_ListClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, journal.DefaultListLimit},
		{"negative uses default", -5, journal.DefaultListLimit},
		{"within range", 10, 10},
		{"above max", journal.MaxListLimit + 1, journal.MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockJournalRepository(t)
			svc := journal.NewService(repo)

			repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f journal.Filter) bool {
				return f.Limit == tt.want && f.PlayerID == "p"
			})).Return(nil, nil).Once()

			_, err := svc.List(context.Background(), journal.Filter{PlayerID: "p", Limit: tt.limit})
			require.NoError(t, err)
		})
	}
}

func TestService_ExportWritesCompressedLines(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)

	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	entries := []journal.Entry{
		{ID: 2, RequestID: "b", ActionType: "harvest", Success: true, CreatedAt: created},
		{ID: 1, RequestID: "a", ActionType: "buy_plant", Success: true, CreatedAt: created},
	}
	repo.EXPECT().List(mock.Anything, mock.Anything).Return(entries, nil).Once()

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf, journal.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dec, err := zstd.NewReader(&buf)
	require.NoError(t, err)
	defer dec.Close()

	var got []journal.Entry
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		var e journal.Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		got = append(got, e)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].RequestID)
	assert.Equal(t, "a", got[1].RequestID)
	assert.True(t, got[0].CreatedAt.Equal(created))
}

func TestService_ExportListError(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)

	repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf, journal.Filter{})
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestService_CleanupDefaultsRetention(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc := journal.NewService(repo)

	repo.EXPECT().Cleanup(mock.Anything, journal.DefaultRetentionDays).Return(int64(4), nil).Once()

	n, err := svc.CleanupOldEntries(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestCleanupJob_Process(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockJournalRepository(t)
		job := journal.NewCleanupJob(journal.NewService(repo), 7)

		repo.EXPECT().Cleanup(mock.Anything, 7).Return(int64(12), nil).Once()
		assert.NoError(t, job.Process(context.Background()))
	})

	t.Run("failure", func(t *testing.T) {
		repo := mocks.NewMockJournalRepository(t)
		job := journal.NewCleanupJob(journal.NewService(repo), 7)

		repo.EXPECT().Cleanup(mock.Anything, 7).Return(int64(0), errors.New("locked")).Once()
		assert.EqualError(t, job.Process(context.Background()), "locked")
	})
}

func TestEntryFromPayload(t *testing.T) {
	e := journal.EntryFromPayload(event.ActionPayloadV1{
		RequestID:  "r",
		PlayerID:   "p",
		ActionType: domain.ActionPlantSeed,
		BedID:      intPtr(1),
		PlantID:    intPtr(4),
		Success:    true,
		Message:    "You planted Giant Pumpkin!",
		DurationMs: 42,
		Timestamp:  1704110400,
	})

	assert.Equal(t, "plant_seed", e.ActionType)
	assert.Equal(t, 1, *e.BedID)
	assert.Equal(t, 4, *e.PlantID)
	assert.Equal(t, int64(42), e.DurationMs)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), e.CreatedAt)
}
