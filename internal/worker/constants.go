package worker

// DefaultJobName labels jobs that do not implement Named
const DefaultJobName = "job"

// Log Messages - Worker Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)
