package sqlite

// DriverName is the database/sql name registered by modernc.org/sqlite
const DriverName = "sqlite"

// Connection pragmas applied through the DSN
const (
	PragmaBusyTimeoutMs = 5000
	PragmaJournalMode   = "WAL"
	PragmaSynchronous   = "NORMAL"
)

// Error Messages - journal operations
const (
	ErrMsgFailedToOpen         = "failed to open sqlite journal"
	ErrMsgFailedToInsertEntry  = "failed to insert journal entry"
	ErrMsgFailedToQueryEntries = "failed to query journal entries"
	ErrMsgFailedToScanEntry    = "failed to scan journal entry"
	ErrMsgFailedToCleanup      = "failed to clean up journal entries"
)
