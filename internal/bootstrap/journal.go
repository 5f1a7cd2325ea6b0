package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MagicGarden_Go/internal/config"
	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/database/postgres"
	"github.com/osse101/MagicGarden_Go/internal/database/sqlite"
	"github.com/osse101/MagicGarden_Go/internal/journal"
)

// Journal is the selected action journal backend. The zero value means the
// journal is disabled.
type Journal struct {
	Service journal.Service
	Repo    journal.Repository
	DB      database.Pinger
}

// Enabled reports whether a backend was opened
func (j *Journal) Enabled() bool {
	return j != nil && j.Repo != nil
}

// Close releases the backend
func (j *Journal) Close() error {
	if !j.Enabled() {
		return nil
	}
	return j.Repo.Close()
}

// BuildJournal opens the backend selected by JOURNAL_DRIVER and migrates it
func BuildJournal(ctx context.Context, cfg *config.Config) (*Journal, error) {
	var (
		repo journal.Repository
		err  error
	)

	switch cfg.JournalDriver {
	case config.JournalDriverNone, "":
		slog.Info(LogMsgJournalDisabled)
		return &Journal{}, nil
	case config.JournalDriverPostgres:
		repo, err = postgres.Open(ctx, database.PoolConfig{
			ConnString: cfg.JournalDSN,
			MaxConns:   cfg.DBMaxConns,
			MaxIdle:    cfg.DBMaxConnIdleTime,
			MaxLife:    cfg.DBMaxConnLifetime,
		})
	case config.JournalDriverSQLite:
		repo, err = sqlite.Open(ctx, cfg.JournalDSN)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.JournalDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenJournal, err)
	}

	j := &Journal{Service: journal.NewService(repo), Repo: repo}
	if p, ok := repo.(database.Pinger); ok {
		j.DB = p
	}

	slog.Info(LogMsgJournalOpened, "driver", cfg.JournalDriver)
	return j, nil
}
