package journal

// Query defaults
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// DefaultRetentionDays is how long entries are kept when unset
const DefaultRetentionDays = 30

// Log messages - service events
const (
	LogMsgPayloadDecodeFailed = "Journal could not decode action payload, skipping"
	LogMsgRecordFailed        = "Failed to record action to journal"
	LogMsgRecorded            = "Action recorded to journal"
	LogMsgExportCompleted     = "Journal export completed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting journal cleanup job"
	LogMsgCleanupJobFailed    = "Journal cleanup failed"
	LogMsgCleanupJobCompleted = "Journal cleanup completed"
)

// Log field keys
const (
	LogFieldActionType    = "action_type"
	LogFieldRequestID     = "request_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
	LogFieldCount         = "count"
)
