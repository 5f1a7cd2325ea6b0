package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQuery          = "Invalid query parameters"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidTime           = "Invalid %s parameter, expected RFC3339"
	ErrMsgInvalidBool           = "Invalid %s parameter, expected true or false"

	ErrMsgSessionBusy        = "Another action is still waiting for the server"
	ErrMsgSessionClosed      = "Session is closed"
	ErrMsgSessionNotLoaded   = "Session is not loaded yet"
	ErrMsgAuthorityFailed    = "Could not reach the garden server"
	ErrMsgReloadFailed       = "Failed to reload session"
	ErrMsgJournalDisabled    = "Action journal is disabled"
	ErrMsgJournalQueryFailed = "Failed to read the action journal"
	ErrMsgExportFailed       = "Failed to export the action journal"
)

// Success messages
const (
	MsgSelectionCleared = "Selection cleared"
	MsgSessionReloaded  = "Session reloaded"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgItemNotFoundError  = "That item is not in your inventory"
)

// Log messages
const (
	LogMsgActionRequest   = "Garden action requested"
	LogMsgActionCompleted = "Garden action completed"
	LogMsgActionRefused   = "Garden action refused"
	LogMsgReloadRequested = "Session reload requested"
	LogMsgExportStarted   = "Journal export started"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
