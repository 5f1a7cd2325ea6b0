package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/journal"
)

func openTestRepo(t *testing.T) *journalRepository {
	t.Helper()
	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo.(*journalRepository)
}

func intPtrOf(v int) *int { return &v }

func TestJournal_RoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "r1", PlayerID: "p1", ActionType: "buy_plant", PlantID: intPtrOf(1),
		Success: true, Message: "You bought Magic Rose!", CoinsChange: -10, CoinsAfter: 90,
		DurationMs: 12, CreatedAt: base,
	}))
	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "r2", PlayerID: "p1", ActionType: "harvest", BedID: intPtrOf(0),
		Success: false, Error: "Plant is not ready", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "r3", PlayerID: "p2", ActionType: "harvest", BedID: intPtrOf(1),
		Success: true, CreatedAt: base.Add(2 * time.Minute),
	}))

	all, err := repo.List(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r3", all[0].RequestID, "newest first")

	got, err := repo.List(ctx, journal.Filter{PlayerID: "p1"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[1]
	assert.Equal(t, "r1", first.RequestID)
	assert.Nil(t, first.BedID)
	require.NotNil(t, first.PlantID)
	assert.Equal(t, 1, *first.PlantID)
	assert.True(t, first.Success)
	assert.Equal(t, -10, first.CoinsChange)
	assert.Equal(t, 90, first.CoinsAfter)
	assert.Equal(t, int64(12), first.DurationMs)
	assert.True(t, first.CreatedAt.Equal(base))

	failed := false
	got, err = repo.List(ctx, journal.Filter{Success: &failed})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plant is not ready", got[0].Error)
	require.NotNil(t, got[0].BedID)
	assert.Equal(t, 0, *got[0].BedID)

	since := base.Add(30 * time.Second)
	got, err = repo.List(ctx, journal.Filter{ActionType: "harvest", Since: &since, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r3", got[0].RequestID)

	until := base
	got, err = repo.List(ctx, journal.Filter{Until: &until})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].RequestID)
}

func TestJournal_RecordDefaultsCreatedAt(t *testing.T) {
	repo := openTestRepo(t)
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	ctx := context.Background()
	require.NoError(t, repo.Record(ctx, journal.Entry{RequestID: "r", PlayerID: "p", ActionType: "unlock_bed"}))

	got, err := repo.List(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].CreatedAt.Equal(fixed))
}

func TestJournal_Cleanup(t *testing.T) {
	repo := openTestRepo(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, repo.Record(ctx, journal.Entry{RequestID: "old", ActionType: "harvest", CreatedAt: now.AddDate(0, 0, -40)}))
	require.NoError(t, repo.Record(ctx, journal.Entry{RequestID: "new", ActionType: "harvest", CreatedAt: now.AddDate(0, 0, -1)}))

	deleted, err := repo.Cleanup(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := repo.List(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].RequestID)
}

func TestJournal_ConcurrentWrites(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Record(ctx, journal.Entry{RequestID: "c", ActionType: "buy_plant", PlantID: intPtrOf(i)}))
		}(i)
	}
	wg.Wait()

	got, err := repo.List(ctx, journal.Filter{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestJournal_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, journal.Entry{RequestID: "persisted", ActionType: "harvest"}))
	require.NoError(t, repo.Close())

	repo, err = Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.List(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].RequestID)
}

func TestJournal_Ping(t *testing.T) {
	repo := openTestRepo(t)

	var _ database.Pinger = repo
	assert.NoError(t, repo.Ping(context.Background()))
}
