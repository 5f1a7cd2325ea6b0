package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/journal"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("journal"),
		tcpostgres.WithUsername("garden"),
		tcpostgres.WithPassword("garden"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func openRepo(t *testing.T) journal.Repository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	repo, err := Open(context.Background(), database.PoolConfig{ConnString: testDBConnString, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestJournalRepository_RoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	bed := 2

	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "pg-1", PlayerID: "pg-player", ActionType: "harvest", BedID: &bed,
		Success: true, Message: "You harvested Magic Rose!", CoinsChange: 15, CoinsAfter: 115,
		DurationMs: 30, CreatedAt: base,
	}))
	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "pg-2", PlayerID: "pg-player", ActionType: "unlock_bed", BedID: &bed,
		Success: false, Error: "Not enough coins", CreatedAt: base.Add(time.Minute),
	}))

	got, err := repo.List(ctx, journal.Filter{PlayerID: "pg-player"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pg-2", got[0].RequestID)
	assert.Equal(t, "pg-1", got[1].RequestID)
	assert.True(t, got[1].CreatedAt.Equal(base))
	require.NotNil(t, got[1].BedID)
	assert.Equal(t, 2, *got[1].BedID)
	assert.Nil(t, got[1].PlantID)
	assert.Equal(t, 115, got[1].CoinsAfter)

	ok := true
	got, err = repo.List(ctx, journal.Filter{PlayerID: "pg-player", Success: &ok})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pg-1", got[0].RequestID)
}

func TestJournalRepository_Cleanup(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "ancient", PlayerID: "cleanup-player", ActionType: "harvest",
		CreatedAt: time.Now().AddDate(0, 0, -90),
	}))
	require.NoError(t, repo.Record(ctx, journal.Entry{
		RequestID: "recent", PlayerID: "cleanup-player", ActionType: "harvest",
		CreatedAt: time.Now(),
	}))

	deleted, err := repo.Cleanup(ctx, 30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	got, err := repo.List(ctx, journal.Filter{PlayerID: "cleanup-player"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "recent", got[0].RequestID)
}
