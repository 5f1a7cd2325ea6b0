package postgres

// Error Messages - journal operations
const (
	ErrMsgFailedToInsertEntry  = "failed to insert journal entry"
	ErrMsgFailedToQueryEntries = "failed to query journal entries"
	ErrMsgFailedToScanEntry    = "failed to scan journal entry"
	ErrMsgFailedToCleanup      = "failed to clean up journal entries"
)
