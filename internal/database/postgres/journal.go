package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/journal"
)

type journalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a PostgreSQL journal repository on an open pool
func NewJournalRepository(db *pgxpool.Pool) journal.Repository {
	return &journalRepository{db: db}
}

// Open connects, migrates, and returns a repository that owns the pool
func Open(ctx context.Context, cfg database.PoolConfig) (journal.Repository, error) {
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := database.Migrate(ctx, sqlDB, database.DialectPostgres); err != nil {
		pool.Close()
		return nil, err
	}

	return NewJournalRepository(pool), nil
}

// Record stores an entry
func (r *journalRepository) Record(ctx context.Context, e journal.Entry) error {
	query := `
		INSERT INTO journal_entries
			(request_id, player_id, action_type, bed_id, plant_id, success, message, error,
			 coins_change, coins_after, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		e.RequestID, e.PlayerID, e.ActionType, e.BedID, e.PlantID, e.Success, e.Message, e.Error,
		e.CoinsChange, e.CoinsAfter, e.DurationMs, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
	}
	return nil
}

// List retrieves entries based on filter criteria, newest first
func (r *journalRepository) List(ctx context.Context, filter journal.Filter) ([]journal.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, request_id, player_id, action_type, bed_id, plant_id, success, message, error,
		       coins_change, coins_after, duration_ms, created_at
		FROM journal_entries
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.PlayerID != "" {
		fmt.Fprintf(&queryBuilder, " AND player_id = $%d", argNum)
		args = append(args, filter.PlayerID)
		argNum++
	}

	if filter.ActionType != "" {
		fmt.Fprintf(&queryBuilder, " AND action_type = $%d", argNum)
		args = append(args, filter.ActionType)
		argNum++
	}

	if filter.Success != nil {
		fmt.Fprintf(&queryBuilder, " AND success = $%d", argNum)
		args = append(args, *filter.Success)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, filter.Since.UTC())
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, filter.Until.UTC())
		argNum++
	}

	fmt.Fprintf(&queryBuilder, " ORDER BY created_at DESC, id DESC LIMIT $%d", argNum)
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEntries, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Cleanup removes entries older than the specified number of days
func (r *journalRepository) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM journal_entries
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanup, err)
	}

	return result.RowsAffected(), nil
}

// Ping checks the pool
func (r *journalRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *journalRepository) Close() error {
	r.db.Close()
	return nil
}

func scanEntries(rows pgx.Rows) ([]journal.Entry, error) {
	var entries []journal.Entry

	for rows.Next() {
		var e journal.Entry
		err := rows.Scan(
			&e.ID,
			&e.RequestID,
			&e.PlayerID,
			&e.ActionType,
			&e.BedID,
			&e.PlantID,
			&e.Success,
			&e.Message,
			&e.Error,
			&e.CoinsChange,
			&e.CoinsAfter,
			&e.DurationMs,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEntry, err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
