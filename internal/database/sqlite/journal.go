// Package sqlite stores the action journal in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/journal"
)

type journalRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the journal at path and migrates it
func Open(ctx context.Context, path string) (journal.Repository, error) {
	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	// One writer; WAL lets readers proceed alongside it.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}

	return &journalRepository{db: db, now: time.Now}, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", PragmaBusyTimeoutMs))
	q.Add("_pragma", fmt.Sprintf("journal_mode(%s)", PragmaJournalMode))
	q.Add("_pragma", fmt.Sprintf("synchronous(%s)", PragmaSynchronous))
	return "file:" + path + "?" + q.Encode()
}

func (r *journalRepository) Record(ctx context.Context, e journal.Entry) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries
			(request_id, player_id, action_type, bed_id, plant_id, success, message, error,
			 coins_change, coins_after, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.PlayerID, e.ActionType, nullInt(e.BedID), nullInt(e.PlantID), e.Success,
		e.Message, e.Error, e.CoinsChange, e.CoinsAfter, e.DurationMs, createdAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
	}
	return nil
}

func (r *journalRepository) List(ctx context.Context, filter journal.Filter) ([]journal.Entry, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, request_id, player_id, action_type, bed_id, plant_id, success, message, error,
		       coins_change, coins_after, duration_ms, created_at
		FROM journal_entries
		WHERE 1=1`)

	var args []interface{}
	if filter.PlayerID != "" {
		b.WriteString(" AND player_id = ?")
		args = append(args, filter.PlayerID)
	}
	if filter.ActionType != "" {
		b.WriteString(" AND action_type = ?")
		args = append(args, filter.ActionType)
	}
	if filter.Success != nil {
		b.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}
	if filter.Since != nil {
		b.WriteString(" AND created_at >= ?")
		args = append(args, filter.Since.UnixMilli())
	}
	if filter.Until != nil {
		b.WriteString(" AND created_at <= ?")
		args = append(args, filter.Until.UnixMilli())
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ?")
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEntries, err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var (
			e         journal.Entry
			bedID     sql.NullInt64
			plantID   sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.RequestID, &e.PlayerID, &e.ActionType, &bedID, &plantID,
			&e.Success, &e.Message, &e.Error, &e.CoinsChange, &e.CoinsAfter, &e.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEntry, err)
		}
		e.BedID = intPtr(bedID)
		e.PlantID = intPtr(plantID)
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *journalRepository) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := r.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanup, err)
	}
	return res.RowsAffected()
}

// Ping checks the database handle
func (r *journalRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *journalRepository) Close() error {
	return r.db.Close()
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
