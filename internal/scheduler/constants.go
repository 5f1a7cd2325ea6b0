package scheduler

// Log Messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Scheduled run skipped, previous runs still queued"
)
